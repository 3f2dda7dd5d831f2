package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/session"
)

// currentSession 从 cookie 里取出并校验会话，未登录时返回 nil
func (a *App) currentSession(c echo.Context) *session.Session {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	s, err := a.session.Parse(c.Request().Context(), cookie.Value)
	if err != nil {
		// 过期、被吊销或者被篡改，一律当作未登录
		return nil
	}

	return s
}

// authUser 要求请求方已登录
func (a *App) authUser(c echo.Context) (*session.Session, error, int) {
	s := a.currentSession(c)
	if s == nil {
		return nil, fmt.Errorf("not logged in"), http.StatusUnauthorized
	}
	return s, nil, http.StatusOK
}

// authStaff 要求 admin 或 co-admin
func (a *App) authStaff(c echo.Context) (*session.Session, error, int) {
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return nil, err, statusCode
	}
	if !constants.StaffRole(s.Role) {
		return nil, fmt.Errorf("role %s is not staff", s.Role), http.StatusForbidden
	}
	return s, nil, http.StatusOK
}

// authAdmin 只允许 admin
func (a *App) authAdmin(c echo.Context) (*session.Session, error, int) {
	s, err, statusCode := a.authUser(c)
	if err != nil {
		return nil, err, statusCode
	}
	if s.Role != constants.RoleAdmin {
		return nil, fmt.Errorf("role %s is not admin", s.Role), http.StatusForbidden
	}
	return s, nil, http.StatusOK
}

func (a *App) setSessionCookie(c echo.Context, token string, expires int64) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expires, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
