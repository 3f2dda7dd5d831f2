package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/models"
)

type settingsEntry struct {
	RegistrationEnabled bool `json:"registration_enabled"`
}

// AdminSettingsGet 读取站点设置
func (a *App) AdminSettingsGet(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var setting models.Setting
	if err := a.db.WithContext(rctx).First(&setting).Error; err != nil {
		a.l.Error("failed to load settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &settingsEntry{
		RegistrationEnabled: setting.RegistrationEnabled,
	})
}

// AdminSettingsUpdate 更新站点设置，co-admin 也可以操作
func (a *App) AdminSettingsUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req settingsEntry
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var setting models.Setting
	if err := a.db.WithContext(rctx).First(&setting).Error; err != nil {
		a.l.Error("failed to load settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.db.WithContext(rctx).Model(&setting).
		Update("registration_enabled", req.RegistrationEnabled).Error; err != nil {
		a.l.Error("failed to update settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c)
}
