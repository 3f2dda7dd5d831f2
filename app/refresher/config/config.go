package config

import (
	"time"
)

type Config struct {
	// 基础配置
	IsProd bool

	// 数据库连接
	DBConnectionString string

	// 刷新配置
	RefreshInterval  time.Duration
	CurseForgeAPIKey string
}
