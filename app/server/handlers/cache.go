package handlers

import (
	"context"

	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/constants"
)

// invalidatePluginCache 在插件数据变动后清掉列表缓存。
// 缓存清理失败不影响请求本身，过期时间会兜底。
func (a *App) invalidatePluginCache(ctx context.Context) {
	if err := a.rdb.Del(ctx, constants.CacheKeyPluginListPublic).Err(); err != nil {
		a.l.Warn("failed to invalidate plugin list cache", zap.Error(err))
	}
}

// invalidateServerInfoCache 在分类变动后清掉服务器信息缓存
func (a *App) invalidateServerInfoCache(ctx context.Context) {
	if err := a.rdb.Del(ctx, constants.CacheKeyServerInfo).Err(); err != nil {
		a.l.Warn("failed to invalidate server info cache", zap.Error(err))
	}
}
