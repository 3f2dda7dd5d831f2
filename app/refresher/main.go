package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"vulcano-plugin-repository/app/refresher/handlers"
	"vulcano-plugin-repository/app/refresher/inits"
	"vulcano-plugin-repository/app/server/fetchers"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化插件抓取
	fetcher := fetchers.New(l, cfg.CurseForgeAPIKey)

	// 开启刷新循环
	handlerApp := handlers.NewApp(cfg, l, db, fetcher)
	handlerApp.Start()

	// 卡住进程避免结束
	select {}
}
