package inits

import (
	"fmt"
	"os"
	"strings"
	"time"

	"vulcano-plugin-repository/app/refresher/config"
)

// 默认每 6 小时刷新一轮
const defaultRefreshInterval = 6 * time.Hour

func Config() (*config.Config, error) {
	var cfg config.Config

	// 运行模式
	cfg.IsProd = strings.HasPrefix(strings.ToLower(os.Getenv("MODE")), "p")

	// 数据库连接
	if dbConn := os.Getenv("DB_CONN"); dbConn != "" {
		cfg.DBConnectionString = dbConn
	} else {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	}

	// 刷新间隔
	cfg.RefreshInterval = defaultRefreshInterval
	if interval := os.Getenv("REFRESH_INTERVAL"); interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
		}
		cfg.RefreshInterval = parsed
	}

	// CurseForge API key ，可以不设置
	cfg.CurseForgeAPIKey = os.Getenv("CURSEFORGE_API_KEY")

	return &cfg, nil
}
