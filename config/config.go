package config

import "stickanim/define"

// Config 进程级配置，由 cli.ParseConfig 填充
var Config *define.Config
