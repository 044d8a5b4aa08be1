package api

import (
	"time"

	"stickanim/define"
	"stickanim/pose"
)

// ApiResponse 统一 API 响应格式
type ApiResponse = define.ApiResponse

// ===== 姿态相关模型 =====

// PointDTO 关节坐标
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PoseDTO 关节名称到坐标的映射
type PoseDTO map[string]PointDTO

func toPoseDTO(p pose.Pose) PoseDTO {
	out := make(PoseDTO, len(p))
	for j, pt := range p {
		out[string(j)] = PointDTO{X: pt.X, Y: pt.Y}
	}
	return out
}

func (d PoseDTO) toPose() pose.Pose {
	out := make(pose.Pose, len(d))
	for j, pt := range d {
		out[pose.Joint(j)] = pose.Pt(pt.X, pt.Y)
	}
	return out
}

// EdgeDTO 骨架连线
type EdgeDTO [2]string

func toEdgeDTOs(topo pose.Topology) []EdgeDTO {
	out := make([]EdgeDTO, len(topo))
	for i, e := range topo {
		out[i] = EdgeDTO{string(e.A), string(e.B)}
	}
	return out
}

// BasePoseResponse 静止姿态与骨架响应
type BasePoseResponse struct {
	Joints PoseDTO   `json:"joints"`
	Edges  []EdgeDTO `json:"edges"`
}

// InterpolateRequest 姿态插值请求
type InterpolateRequest struct {
	From PoseDTO  `json:"from" binding:"required"`
	To   PoseDTO  `json:"to" binding:"required"`
	T    *float64 `json:"t" binding:"required"`
}

// ===== 动画相关模型 =====

// AnimationInfo 动画概要
type AnimationInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frames      int    `json:"frames"`
}

// AnimationListResponse 动画列表响应
type AnimationListResponse struct {
	Animations []AnimationInfo `json:"animations"`
	Total      int             `json:"total"`
}

// AnimationDetailResponse 动画详情，包含每一帧的姿态
type AnimationDetailResponse struct {
	AnimationInfo
	Angles  []float64 `json:"angles,omitempty"`
	DelayMs int64     `json:"delayMs"`
	Poses   []PoseDTO `json:"poses"`
}

// ===== 系统相关模型 =====

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version,omitempty"`
	Uptime    time.Duration `json:"uptime"`
}
