package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/fetchers"
	"vulcano-plugin-repository/app/server/models"
)

// refresh 重新抓取所有插件的元数据。
// owner 和 category 是用户数据，刷新不碰它们。
func (a *App) refresh() {
	// 设置并发锁，上一轮还没跑完就跳过这一轮
	if !a.lock.TryLock() {
		return
	}
	defer a.lock.Unlock()

	ctx := context.Background()

	var plugins []models.Plugin
	if err := a.db.WithContext(ctx).Order("id ASC").Find(&plugins).Error; err != nil {
		a.l.Error("failed to load plugins", zap.Error(err))
		return
	}
	if len(plugins) == 0 {
		a.l.Info("no plugins to refresh")
		return
	}

	a.l.Info("refresh round started", zap.Int("count", len(plugins)))

	successCount := 0
	for i := range plugins {
		plugin := &plugins[i]

		// 刷新期间插件可能已经被删掉了
		var current models.Plugin
		if err := a.db.WithContext(ctx).First(&current, "url = ? AND owner = ?", plugin.URL, plugin.Owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				a.l.Info("plugin removed during refresh, skipping", zap.String("url", plugin.URL))
				continue
			}
			a.l.Error("failed to re-check plugin", zap.String("url", plugin.URL), zap.Error(err))
			continue
		}

		data, err := a.fetcher.Fetch(ctx, plugin.URL)
		if err != nil {
			// 抓取失败时保留原有数据
			a.l.Warn("failed to refresh plugin, keeping existing data", zap.String("url", plugin.URL), zap.Error(err))
			continue
		}

		mergeRefreshed(&current, data)

		if err := a.db.WithContext(ctx).Save(&current).Error; err != nil {
			a.l.Error("failed to save refreshed plugin", zap.String("url", plugin.URL), zap.Error(err))
			continue
		}
		successCount++
	}

	a.l.Info("refresh round finished",
		zap.Int("success", successCount),
		zap.Int("total", len(plugins)),
	)
}

// mergeRefreshed 把抓取结果套到已有记录上，保留归属信息
func mergeRefreshed(plugin *models.Plugin, data *fetchers.PluginData) {
	plugin.Title = data.Title
	plugin.Description = data.Description
	plugin.Author = data.Author
	plugin.Icon = data.Icon
	plugin.Versions = strings.Join(data.Versions, " ")
	plugin.Loaders = pq.StringArray(data.Loaders)
}
