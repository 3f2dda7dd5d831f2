package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/models"
)

// AdminServerInfoGet 返回每个分类的服务端软件信息，管理面板编辑用
func (a *App) AdminServerInfoGet(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

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

	return c.JSON(http.StatusOK, info)
}

// AdminServerInfoUpdate 按分类名批量更新软件和版本信息
func (a *App) AdminServerInfoUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req map[string]serverInfoEntry
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		for name, entry := range req {
			if err := tx.Model(&models.Category{}).Where("name = ?", name).
				Updates(map[string]any{
					"software": entry.Software,
					"version":  entry.Version,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		a.l.Error("failed to update server info", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateServerInfoCache(rctx)

	return a.ok(c)
}
