package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/models"
)

type adminUserEntry struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	PluginCount int64  `json:"plugin_count"`
}

// AdminUserList 返回所有用户和各自的插件数量
func (a *App) AdminUserList(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	var users []models.User
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 插件数量一次查完，避免每个用户一条 count
	type ownerCount struct {
		Owner string
		Count int64
	}
	var counts []ownerCount
	if err := a.db.WithContext(rctx).Model(&models.Plugin{}).
		Select("owner, count(*) as count").Group("owner").Scan(&counts).Error; err != nil {
		a.l.Error("failed to count plugins", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	countByOwner := make(map[string]int64, len(counts))
	for _, count := range counts {
		countByOwner[count.Owner] = count.Count
	}

	entries := make([]adminUserEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, adminUserEntry{
			Username:    user.Username,
			Role:        user.Role,
			PluginCount: countByOwner[user.Username],
		})
	}

	return c.JSON(http.StatusOK, entries)
}

// AdminUserRoleUpdate 修改用户角色，只有 admin 可以操作
func (a *App) AdminUserRoleUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	username := c.Param("username")

	// 绑定请求体
	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if !constants.ValidRole(req.Role) {
		return a.er(c, http.StatusBadRequest, "Invalid role")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "User not found")
		} else {
			a.l.Error("failed to find user", zap.String("username", username), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	if err := a.db.WithContext(rctx).Model(&user).Update("role", req.Role).Error; err != nil {
		a.l.Error("failed to update role", zap.String("username", username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c)
}

// AdminUserDelete 删除用户，内置的 admin 账号除外
func (a *App) AdminUserDelete(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authAdmin(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()
	username := c.Param("username")

	if username == "admin" {
		return a.er(c, http.StatusBadRequest, "The admin account cannot be deleted")
	}

	// 物理删除，用户名之后还可以重新注册
	result := a.db.WithContext(rctx).Unscoped().Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		a.l.Error("failed to delete user", zap.String("username", username), zap.Error(result.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if result.RowsAffected == 0 {
		return a.er(c, http.StatusNotFound, "User not found")
	}

	return a.ok(c)
}
