package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/fetchers"
	"vulcano-plugin-repository/app/server/models"
)

// FetchPlugin 根据 URL 抓取插件元数据，作为添加向导的预览步骤。
// 结果会缓存一段时间，同一个 URL 重复预览不会打爆外部 API 。
func (a *App) FetchPlugin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.URL == "" {
		return a.er(c, http.StatusBadRequest, "No URL provided")
	}

	// 先查缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyPluginPreview, req.URL)
	cached, err := a.rdb.Get(rctx, cacheKey).Result()
	if err == nil {
		var data fetchers.PluginData
		if err := json.Unmarshal([]byte(cached), &data); err == nil {
			return c.JSON(http.StatusOK, &data)
		}
		a.rdb.Del(rctx, cacheKey)
	} else if !errors.Is(err, redis.Nil) {
		a.l.Warn("failed to read plugin preview cache", zap.Error(err))
	}

	data, err := a.fetcher.Fetch(rctx, req.URL)
	if err != nil {
		a.l.Error("failed to fetch plugin data", zap.String("url", req.URL), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to fetch plugin data")
	}

	// 写入缓存
	if dataBytes, err := json.Marshal(data); err == nil {
		if err := a.rdb.Set(rctx, cacheKey, dataBytes, constants.CacheExpirePluginPreview).Err(); err != nil {
			a.l.Warn("failed to write plugin preview cache", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, data)
}

// AddPlugin 把预览过的插件数据存入仓库
func (a *App) AddPlugin(c echo.Context) error {
	// 抓取会话信息（认证）
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		PluginData *fetchers.PluginData `json:"plugin_data"`
		Category   string               `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.PluginData == nil || req.PluginData.URL == "" {
		return a.er(c, http.StatusBadRequest, "No plugin data provided")
	}

	plugin := pluginModelFromData(req.PluginData, req.Category, s.Username)

	// 同一个 URL 重复添加时更新数据，不产生重复记录
	if err := a.db.WithContext(rctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "author", "icon", "versions", "loaders", "category", "owner",
		}),
	}).Create(&plugin).Error; err != nil {
		a.l.Error("failed to save plugin", zap.String("url", plugin.URL), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to save plugin")
	}

	a.invalidatePluginCache(rctx)

	return a.ok(c, "Plugin added successfully")
}

// DeletePlugin 删除一个插件。普通用户只能删自己的，管理员不受限。
func (a *App) DeletePlugin(c echo.Context) error {
	// 抓取会话信息（认证）
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.URL == "" {
		return a.er(c, http.StatusBadRequest, "No URL provided")
	}

	query := a.db.WithContext(rctx).Where("url = ?", req.URL)
	if !constants.StaffRole(s.Role) {
		query = query.Where("owner = ?", s.Username)
	}

	// 物理删除，同一个 URL 之后还可以重新添加
	result := query.Unscoped().Delete(&models.Plugin{})
	if result.Error != nil {
		a.l.Error("failed to delete plugin", zap.String("url", req.URL), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound, "Plugin not found")
	}

	a.invalidatePluginCache(rctx)

	return a.ok(c, "Plugin deleted successfully")
}
