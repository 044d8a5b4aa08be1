package api

import (
	"net/http"

	"stickanim/pose"

	"github.com/gin-gonic/gin"
)

// handleGetBasePose 获取静止姿态与骨架连线
func (s *Server) handleGetBasePose(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: BasePoseResponse{
			Joints: toPoseDTO(s.scene.Base),
			Edges:  toEdgeDTOs(s.scene.Topology),
		},
	})
}

// handleInterpolate 在两个姿态之间插值
func (s *Server) handleInterpolate(c *gin.Context) {
	var req InterpolateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "无效的插值请求：" + err.Error(),
		})
		return
	}

	out, err := pose.Interpolate(req.From.toPose(), req.To.toPose(), *req.T)
	if err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "姿态插值失败：" + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   toPoseDTO(out),
	})
}
