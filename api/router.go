package api

import (
	"time"

	"stickanim/animation"
	"stickanim/config"

	"github.com/gin-gonic/gin"
)

// Server 动画预览服务
type Server struct {
	registry  *animation.Registry
	scene     *config.Scene
	driver    *animation.Driver
	startTime time.Time
	version   string
}

// NewServer 创建预览服务实例
func NewServer(registry *animation.Registry, scene *config.Scene, driver *animation.Driver) *Server {
	return &Server{
		registry:  registry,
		scene:     scene,
		driver:    driver,
		startTime: time.Now(),
		version:   "1.0.0",
	}
}

// SetupRoutes 设置 API 路由
func (s *Server) SetupRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		// 动画路由
		animations := v1.Group("/animations")
		{
			animations.GET("", s.handleGetAnimations)       // 获取动画列表
			animations.GET("/:name", s.handleGetAnimation)  // 获取动画详情与逐帧姿态
			animations.GET("/:name/gif", s.handleRenderGIF) // 渲染并下载 GIF
		}

		// 姿态路由
		poses := v1.Group("/poses")
		{
			poses.GET("/base", s.handleGetBasePose)         // 获取静止姿态
			poses.POST("/interpolate", s.handleInterpolate) // 姿态插值
		}

		// 系统路由
		system := v1.Group("/system")
		{
			system.GET("/health", s.handleHealthCheck) // 健康检查
		}
	}
}
