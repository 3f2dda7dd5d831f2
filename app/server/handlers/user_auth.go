package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	// 注册开关
	var setting models.Setting
	if err := a.db.WithContext(rctx).First(&setting).Error; err != nil {
		a.l.Error("failed to load settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if !setting.RegistrationEnabled {
		return a.er(c, http.StatusForbidden, "Registration is disabled")
	}

	// 绑定请求体
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Username and password are required")
	}

	// 检查用户名是否已被占用
	var count int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		a.l.Error("failed to check username", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if count > 0 {
		return a.er(c, http.StatusBadRequest, "Username already exists")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	user := models.User{
		Username: req.Username,
		Password: passwordHash,
		Role:     constants.RoleUser,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c)
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Username and password are required")
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
		// 密码不一致
		return a.er(c, http.StatusUnauthorized, "Invalid credentials")
	}

	// 签发会话
	token, s, err := a.session.Sign(user.Username, user.Role)
	if err != nil {
		a.l.Error("failed to sign session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.setSessionCookie(c, token, s.Expires)

	return a.ok(c)
}

func (a *App) Logout(c echo.Context) error {
	// 已登录的话吊销会话，没登录也一样返回成功
	if s := a.currentSession(c); s != nil {
		if err := a.session.Revoke(c.Request().Context(), s); err != nil {
			a.l.Warn("failed to revoke session", zap.Error(err))
		}
	}
	a.clearSessionCookie(c)

	return a.ok(c)
}

func (a *App) ChangePassword(c echo.Context) error {
	// 抓取会话信息（认证）
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return a.er(c, http.StatusBadRequest, "Old and new password are required")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", s.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound)
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 校验旧密码
	if match, _, err := argon2id.CheckHash(req.OldPassword, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		return a.er(c, http.StatusUnauthorized, "Old password is incorrect")
	}

	newPasswordHash, err := argon2id.CreateHash(req.NewPassword, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if err := a.db.WithContext(rctx).Model(&user).Update("password", newPasswordHash).Error; err != nil {
		a.l.Error("failed to update password", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c, "Password changed successfully")
}

func (a *App) AuthStatus(c echo.Context) error {
	res := struct {
		LoggedIn bool   `json:"logged_in"`
		Username string `json:"username,omitempty"`
		Role     string `json:"role"`
	}{
		Role: constants.RoleUser,
	}

	if s := a.currentSession(c); s != nil {
		res.LoggedIn = true
		res.Username = s.Username
		res.Role = s.Role
	}

	return c.JSON(http.StatusOK, &res)
}

func (a *App) RegistrationStatus(c echo.Context) error {
	var setting models.Setting
	if err := a.db.WithContext(c.Request().Context()).First(&setting).Error; err != nil {
		a.l.Error("failed to load settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"enabled": setting.RegistrationEnabled,
	})
}

// RegistrationStatusUpdate 开关新用户注册，管理面板的快捷入口
func (a *App) RegistrationStatusUpdate(c echo.Context) error {
	// 抓取会话信息（认证）
	_, err, statusCode := a.authStaff(c)
	if err != nil {
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req struct {
		Enabled bool `json:"enabled"`
	}
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
		Update("registration_enabled", req.Enabled).Error; err != nil {
		a.l.Error("failed to update settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return a.ok(c)
}
