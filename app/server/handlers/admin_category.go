package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/models"
)

// AdminCategoryList 返回所有分类
func (a *App) AdminCategoryList(c echo.Context) error {
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

	return c.JSON(http.StatusOK, categoryEntries(categories))
}

// AdminCategoryCreate 新建分类
func (a *App) AdminCategoryCreate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Name == "" {
		return a.er(c, http.StatusBadRequest, "Name is required")
	}

	// 名字不能重复
	var count int64
	if err := a.db.WithContext(rctx).Model(&models.Category{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		a.l.Error("failed to check category name", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if count > 0 {
		return a.er(c, http.StatusBadRequest, "Category already exists")
	}

	category := models.Category{
		Name: req.Name,
	}
	if err := a.db.WithContext(rctx).Create(&category).Error; err != nil {
		a.l.Error("failed to create category", zap.String("name", req.Name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateServerInfoCache(rctx)

	return a.ok(c)
}

// AdminCategoryUpdate 更新分类。改名时同一事务里把插件的分类字段一起迁过去。
func (a *App) AdminCategoryUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	name := c.Param("name")

	// 绑定请求体，指针区分"没传"和"传了空值"
	var req struct {
		NewName   *string `json:"new_name"`
		ImageURL  *string `json:"image_url"`
		ShowImage *bool   `json:"show_image"`
		Software  *string `json:"software"`
		Version   *string `json:"version"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var category models.Category
	if err := a.db.WithContext(rctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Category not found")
		} else {
			a.l.Error("failed to find category", zap.String("name", name), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	renaming := req.NewName != nil && *req.NewName != "" && *req.NewName != name
	if renaming {
		var count int64
		if err := a.db.WithContext(rctx).Model(&models.Category{}).Where("name = ?", *req.NewName).Count(&count).Error; err != nil {
			a.l.Error("failed to check category name", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
		if count > 0 {
			return a.er(c, http.StatusBadRequest, "Category name already exists")
		}
		category.Name = *req.NewName
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}
	if req.ShowImage != nil {
		category.ShowImage = *req.ShowImage
	}
	if req.Software != nil {
		category.Software = *req.Software
	}
	if req.Version != nil {
		category.Version = *req.Version
	}

	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if renaming {
			// 挂在旧分类下的插件跟着改名
			if err := tx.Model(&models.Plugin{}).Where("category = ?", name).
				Update("category", category.Name).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		a.l.Error("failed to update category", zap.String("name", name), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateServerInfoCache(rctx)
	if renaming {
		a.invalidatePluginCache(rctx)
	}

	return a.ok(c)
}

// AdminCategoryDelete 删除分类，分类下的插件保持原样
func (a *App) AdminCategoryDelete(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	name := c.Param("name")

	result := a.db.WithContext(rctx).Unscoped().Where("name = ?", name).Delete(&models.Category{})
	if result.Error != nil {
		a.l.Error("failed to delete category", zap.String("name", name), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound, "Category not found")
	}

	a.invalidateServerInfoCache(rctx)

	return a.ok(c)
}
