package handlers

import (
	"errors"
	"net/http"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/models"
)

// AdminLogin 管理面板登录，只接受 admin 和 co-admin
func (a *App) AdminLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		return a.er(c, http.StatusUnauthorized, "Invalid credentials")
	}

	// 普通用户不能进管理面板
	if !constants.StaffRole(user.Role) {
		return a.er(c, http.StatusUnauthorized, "Invalid credentials")
	}

	// 签发会话
	token, s, err := a.session.Sign(user.Username, user.Role)
	if err != nil {
		a.l.Error("failed to sign session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.setSessionCookie(c, token, s.Expires)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"role":    user.Role,
	})
}

func (a *App) AdminLogout(c echo.Context) error {
	return a.Logout(c)
}

// AdminCheckSession 检查当前会话是否还有管理面板权限
func (a *App) AdminCheckSession(c echo.Context) error {
	s := a.currentSession(c)
	if s == nil || !constants.StaffRole(s.Role) {
		return c.JSON(http.StatusOK, map[string]any{
			"logged_in": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"logged_in": true,
		"role":      s.Role,
		"username":  s.Username,
	})
}
