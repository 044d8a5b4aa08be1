package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"stickanim/animation"
	"stickanim/api"
	"stickanim/cli"
	"stickanim/config"
	"stickanim/encode"
	"stickanim/render"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func printUsage() {
	fmt.Println("Stick Figure Exercise Animation Generator")
	fmt.Println("Usage:")
	fmt.Println("  -out string          输出的 GIF 文件路径 (default: shoulder_pendulum.gif)")
	fmt.Println("  -animation string    动画名称: shoulder_pendulum, shoulder_pendulum_r, arm_reach")
	fmt.Println("  -scene string        YAML 场景文件路径")
	fmt.Println("  -dump-scene string   导出当前场景到 YAML 文件")
	fmt.Println("  -progress            显示渲染进度条")
	fmt.Println("  -serve               启动 HTTP 预览服务")
	fmt.Println("  -port string         预览服务端口 (default: 9099)")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  STICKANIM_OUT, STICKANIM_ANIMATION, STICKANIM_SCENE, STICKANIM_PORT, STICKANIM_PROGRESS")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  ./stickanim")
	fmt.Println("  ./stickanim -animation arm_reach -out reach.gif -progress")
	fmt.Println("  ./stickanim -scene scene.yaml -serve -port 8080")
}

// loadScene 加载场景文件，未指定时使用内置场景
func loadScene(path string) (*config.Scene, error) {
	if path == "" {
		return config.DefaultScene(), nil
	}
	log.Printf("📄 加载场景文件: %s", path)
	return config.LoadScene(path)
}

func main() {
	// 检查是否请求帮助
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		return
	}

	// 解析配置
	config.Config = cli.ParseConfig()
	cfg := config.Config

	scene, err := loadScene(cfg.ScenePath)
	if err != nil {
		log.Fatalf("❌ 加载场景失败: %v", err)
	}

	if cfg.DumpScene != "" {
		if err := config.SaveScene(scene, cfg.DumpScene); err != nil {
			log.Fatalf("❌ %v", err)
		}
		fmt.Println("Wrote", cfg.DumpScene)
		return
	}

	registry, err := animation.Builtin(scene.Base, scene.Sweep)
	if err != nil {
		log.Fatalf("❌ 初始化动画失败: %v", err)
	}

	renderer, err := render.NewRenderer(scene.Style)
	if err != nil {
		log.Fatalf("❌ 初始化渲染器失败: %v", err)
	}
	driver := animation.NewDriver(renderer, encode.NewGIF(scene.Style.Palette(), scene.Delay))

	if cfg.Serve {
		serve(cfg.WebPort, api.NewServer(registry, scene, driver))
		return
	}

	anim, err := registry.Get(cfg.Animation)
	if err != nil {
		log.Fatalf("❌ %v，可用动画: %v", err, registry.Names())
	}

	driver.Progress = cfg.Progress
	if err := driver.Run(anim, scene.Topology, cfg.Output); err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Println("Wrote", cfg.Output)
}

// serve 启动 HTTP 预览服务
func serve(port string, server *api.Server) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	server.SetupRoutes(r)

	log.Printf("🌐 动画预览服务运行在 http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ 服务启动失败: %v", err)
	}
}
