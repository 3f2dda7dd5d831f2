package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/models"
)

// pluginURLParam 取出路径里的插件 URL ，echo 不会自动解码通配参数
func pluginURLParam(c echo.Context) (string, error) {
	return url.PathUnescape(c.Param("url"))
}

// AdminPluginList 返回所有插件，含 owner 字段
func (a *App) AdminPluginList(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var plugins []models.Plugin
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&plugins).Error; err != nil {
		a.l.Error("failed to get plugin list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, pluginEntries(plugins))
}

// AdminPluginDelete 删除任意插件
func (a *App) AdminPluginDelete(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	pluginURL, err := pluginURLParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	result := a.db.WithContext(rctx).Unscoped().Where("url = ?", pluginURL).Delete(&models.Plugin{})
	if result.Error != nil {
		a.l.Error("failed to delete plugin", zap.String("url", pluginURL), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound, "Plugin not found")
	}

	a.invalidatePluginCache(rctx)

	return a.ok(c)
}

// AdminPluginDetailsUpdate 修改插件的标题、作者和分类
func (a *App) AdminPluginDetailsUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	pluginURL, err := pluginURLParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 绑定请求体
	var req struct {
		Title    string  `json:"title"`
		Author   string  `json:"author"`
		Category *string `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Title == "" || req.Author == "" {
		return a.er(c, http.StatusBadRequest, "Title and author are required")
	}

	updates := map[string]any{
		"title":  req.Title,
		"author": req.Author,
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	result := a.db.WithContext(rctx).Model(&models.Plugin{}).Where("url = ?", pluginURL).Updates(updates)
	if result.Error != nil {
		a.l.Error("failed to update plugin details", zap.String("url", pluginURL), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound, "Plugin not found")
	}

	a.invalidatePluginCache(rctx)

	return a.ok(c)
}
