package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/catalog"
	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/models"
)

// PluginsPublic 返回完整的插件列表，供未登录的访问者浏览
func (a *App) PluginsPublic(c echo.Context) error {
	rctx := c.Request().Context()

	// 先查缓存
	cached, err := a.rdb.Get(rctx, constants.CacheKeyPluginListPublic).Result()
	if err == nil {
		var entries []catalog.Plugin
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return c.JSON(http.StatusOK, entries)
		}
		// 缓存坏了就清掉重建
		a.rdb.Del(rctx, constants.CacheKeyPluginListPublic)
	} else if !errors.Is(err, redis.Nil) {
		a.l.Warn("failed to read plugin list cache", zap.Error(err))
	}

	var plugins []models.Plugin
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&plugins).Error; err != nil {
		a.l.Error("failed to get plugin list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	entries := pluginEntries(plugins)

	// 写入缓存
	if entriesBytes, err := json.Marshal(entries); err == nil {
		if err := a.rdb.Set(rctx, constants.CacheKeyPluginListPublic, entriesBytes, constants.CacheExpirePluginListPublic).Err(); err != nil {
			a.l.Warn("failed to write plugin list cache", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, entries)
}

// PluginsOwn 返回当前登录用户自己的插件
func (a *App) PluginsOwn(c echo.Context) error {
	// 抓取会话信息（认证）
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var plugins []models.Plugin
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&plugins, "owner = ?", s.Username).Error; err != nil {
		a.l.Error("failed to get user plugins", zap.String("username", s.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, pluginEntries(plugins))
}

type categoryEntry struct {
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	ShowImage bool   `json:"show_image"`
	Software  string `json:"software"`
	Version   string `json:"version"`
}

func categoryEntries(categories []models.Category) []categoryEntry {
	entries := make([]categoryEntry, 0, len(categories))
	for _, category := range categories {
		entries = append(entries, categoryEntry{
			Name:      category.Name,
			ImageURL:  category.ImageURL,
			ShowImage: category.ShowImage,
			Software:  category.Software,
			Version:   category.Version,
		})
	}
	return entries
}

// ServerCategories 返回所有服务器分类
func (a *App) ServerCategories(c echo.Context) error {
	rctx := c.Request().Context()

	var categories []models.Category
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&categories).Error; err != nil {
		a.l.Error("failed to get categories", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, categoryEntries(categories))
}

// ServerCategoryNames 只返回分类名称的数组，静态文件时代的回退格式
func (a *App) ServerCategoryNames(c echo.Context) error {
	rctx := c.Request().Context()

	var categories []models.Category
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&categories).Error; err != nil {
		a.l.Error("failed to get categories", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	return c.JSON(http.StatusOK, names)
}

type serverInfoEntry struct {
	Software string `json:"software"`
	Version  string `json:"version"`
}

// ServerInfo 返回每个分类对应的服务端软件和版本
func (a *App) ServerInfo(c echo.Context) error {
	rctx := c.Request().Context()

	// 先查缓存
	cached, err := a.rdb.Get(rctx, constants.CacheKeyServerInfo).Result()
	if err == nil {
		var info map[string]serverInfoEntry
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return c.JSON(http.StatusOK, info)
		}
		a.rdb.Del(rctx, constants.CacheKeyServerInfo)
	} else if !errors.Is(err, redis.Nil) {
		a.l.Warn("failed to read server info cache", zap.Error(err))
	}

	var categories []models.Category
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&categories).Error; err != nil {
		a.l.Error("failed to get categories", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	info := make(map[string]serverInfoEntry, len(categories))
	for _, category := range categories {
		info[category.Name] = serverInfoEntry{
			Software: category.Software,
			Version:  category.Version,
		}
	}

	// 写入缓存
	if infoBytes, err := json.Marshal(info); err == nil {
		if err := a.rdb.Set(rctx, constants.CacheKeyServerInfo, infoBytes, constants.CacheExpireServerInfo).Err(); err != nil {
			a.l.Warn("failed to write server info cache", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, info)
}

// Loaders 返回目前出现过的所有加载器
func (a *App) Loaders(c echo.Context) error {
	rctx := c.Request().Context()

	var plugins []models.Plugin
	if err := a.db.WithContext(rctx).Select("loaders").Find(&plugins).Error; err != nil {
		a.l.Error("failed to get plugin loaders", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	loaders := catalog.LoaderOptions(pluginEntries(plugins))
	if loaders == nil {
		loaders = []string{}
	}
	return c.JSON(http.StatusOK, loaders)
}

func (a *App) Healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
