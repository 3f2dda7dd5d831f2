package handlers

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/refresher/config"
	"vulcano-plugin-repository/app/server/fetchers"
)

type App struct {
	cfg     *config.Config
	l       *zap.Logger
	db      *gorm.DB
	fetcher *fetchers.Client

	ticker   *time.Ticker
	stopChan chan struct{}
	lock     sync.Mutex
}

func NewApp(cfg *config.Config, l *zap.Logger, db *gorm.DB, fetcher *fetchers.Client) *App {
	return &App{
		cfg:     cfg,
		l:       l,
		db:      db,
		fetcher: fetcher,
	}
}

func (a *App) Start() {
	a.ticker = time.NewTicker(a.cfg.RefreshInterval)
	a.stopChan = make(chan struct{})
	go a.loop()

	// 启动时先跑一轮，不用等第一个间隔
	go a.refresh()
}

func (a *App) loop() {
	for {
		select {
		case <-a.ticker.C:
			a.l.Debug("refresh loop")
			a.refresh()
		case <-a.stopChan:
			a.l.Debug("stop refresh loop")
			return
		}
	}
}

func (a *App) Stop() {
	a.ticker.Stop()
	close(a.stopChan)
}
