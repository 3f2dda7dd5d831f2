package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/fetchers"
	"vulcano-plugin-repository/app/server/session"
)

type App struct {
	l       *zap.Logger      // 日志
	db      *gorm.DB         // 数据库
	rdb     *redis.Client    // Redis
	session *session.Manager // 会话签发与吊销
	fetcher *fetchers.Client // 插件平台抓取
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, sm *session.Manager, fetcher *fetchers.Client) *App {
	return &App{
		l:       l,
		db:      db,
		rdb:     rdb,
		session: sm,
		fetcher: fetcher,
	}
}
