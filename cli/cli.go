package cli

import (
	"flag"
	"os"
	"strconv"

	"stickanim/animation"
	"stickanim/define"
)

// 解析配置
func ParseConfig() *define.Config {
	// flag.CommandLine 解析失败时直接退出
	cfg, _ := ParseArgs(flag.CommandLine, os.Args[1:], os.Getenv)
	return cfg
}

// ParseArgs 解析命令行参数，环境变量覆盖命令行参数
func ParseArgs(fs *flag.FlagSet, args []string, getenv func(string) string) (*define.Config, error) {
	cfg := &define.Config{}

	fs.StringVar(&cfg.Output, "out", "shoulder_pendulum.gif", "输出的 GIF 文件路径")
	fs.StringVar(&cfg.Animation, "animation", animation.ShoulderPendulum, "要生成的动画名称")
	fs.StringVar(&cfg.ScenePath, "scene", "", "YAML 场景文件路径，为空时使用内置场景")
	fs.StringVar(&cfg.DumpScene, "dump-scene", "", "将当前场景写入指定的 YAML 文件后退出")
	fs.BoolVar(&cfg.Progress, "progress", false, "显示渲染进度条")
	fs.BoolVar(&cfg.Serve, "serve", false, "以 HTTP 预览服务方式运行")
	fs.StringVar(&cfg.WebPort, "port", "9099", "预览服务的端口")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if v := getenv("STICKANIM_OUT"); v != "" {
		cfg.Output = v
	}
	if v := getenv("STICKANIM_ANIMATION"); v != "" {
		cfg.Animation = v
	}
	if v := getenv("STICKANIM_SCENE"); v != "" {
		cfg.ScenePath = v
	}
	if v := getenv("STICKANIM_PORT"); v != "" {
		cfg.WebPort = v
	}
	if v := getenv("STICKANIM_PROGRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Progress = b
		}
	}

	return cfg, nil
}
