package define

// 配置结构体
type Config struct {
	Output    string // 输出的动画文件路径
	Animation string // 要生成的动画名称
	ScenePath string // 场景文件路径，为空时使用内置场景
	DumpScene string // 导出场景文件的路径
	Progress  bool   // 是否显示渲染进度条
	Serve     bool   // 是否以 HTTP 预览服务方式运行
	WebPort   string
}

// API 响应结构体
type ApiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}
