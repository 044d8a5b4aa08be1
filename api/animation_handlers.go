package api

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"stickanim/animation"

	"github.com/gin-gonic/gin"
)

// handleGetAnimations 获取可用动画列表
func (s *Server) handleGetAnimations(c *gin.Context) {
	names := s.registry.Names()
	infos := make([]AnimationInfo, 0, len(names))
	for _, name := range names {
		anim, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, animationInfo(anim))
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: AnimationListResponse{
			Animations: infos,
			Total:      len(infos),
		},
	})
}

// handleGetAnimation 获取动画详情与逐帧姿态
func (s *Server) handleGetAnimation(c *gin.Context) {
	anim, ok := s.lookup(c)
	if !ok {
		return
	}

	response := AnimationDetailResponse{
		AnimationInfo: animationInfo(anim),
		DelayMs:       s.scene.Delay.Milliseconds(),
		Poses:         make([]PoseDTO, 0, anim.Frames()),
	}
	if withAngles, ok := anim.(interface{ Angles() []float64 }); ok {
		response.Angles = withAngles.Angles()
	}
	for p := range anim.Poses() {
		response.Poses = append(response.Poses, toPoseDTO(p))
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data:   response,
	})
}

// handleRenderGIF 渲染动画并以 GIF 返回
func (s *Server) handleRenderGIF(c *gin.Context) {
	anim, ok := s.lookup(c)
	if !ok {
		return
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := s.driver.Write(&buf, anim, s.scene.Topology); err != nil {
		log.Printf("❌ 渲染动画 %s 失败: %v", anim.Name(), err)
		c.JSON(http.StatusInternalServerError, ApiResponse{
			Status: "error",
			Error:  "渲染动画失败：" + err.Error(),
		})
		return
	}
	log.Printf("🎞️ 动画 %s 渲染完成 (%d 字节, 耗时 %v)", anim.Name(), buf.Len(), time.Since(start))

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", anim.Name()+".gif"))
	c.Data(http.StatusOK, "image/gif", buf.Bytes())
}

// lookup 根据路由参数获取动画，不存在时直接写入 404 响应
func (s *Server) lookup(c *gin.Context) (animation.Animation, bool) {
	name := c.Param("name")
	anim, err := s.registry.Get(name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, animation.ErrUnknownAnimation) {
			status = http.StatusNotFound
		}
		c.JSON(status, ApiResponse{
			Status: "error",
			Error:  fmt.Sprintf("动画 %s 不存在", name),
		})
		return nil, false
	}
	return anim, true
}

func animationInfo(anim animation.Animation) AnimationInfo {
	return AnimationInfo{
		Name:        anim.Name(),
		Description: anim.Description(),
		Frames:      anim.Frames(),
	}
}
