package handlers

import "github.com/labstack/echo/v4"

// RegisterRoutes 挂载所有接口
func (a *App) RegisterRoutes(e *echo.Echo) {
	// 页面
	e.GET("/", a.Index)
	e.GET("/healthz", a.Healthz)

	// 账号
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)
	e.GET("/auth-status", a.AuthStatus)
	e.GET("/registration-status", a.RegistrationStatus)
	e.POST("/registration-status", a.RegistrationStatusUpdate)
	e.POST("/api/change-password", a.ChangePassword)

	// 插件目录
	e.GET("/api/plugins", a.PluginsOwn)
	e.GET("/api/plugins/public", a.PluginsPublic)
	e.GET("/api/server_categories", a.ServerCategories)
	e.GET("/server_categories.json", a.ServerCategoryNames) // 静态文件时代留下的回退地址
	e.GET("/api/server_info", a.ServerInfo)
	e.GET("/api/loaders", a.Loaders)

	// 插件管理
	e.POST("/fetch_plugin", a.FetchPlugin)
	e.POST("/add_plugin", a.AddPlugin)
	e.POST("/delete_plugin", a.DeletePlugin)

	// 管理面板
	e.POST("/admin/login", a.AdminLogin)
	e.POST("/admin/logout", a.AdminLogout)
	e.GET("/admin/check-session", a.AdminCheckSession)
	e.GET("/admin/users", a.AdminUserList)
	e.POST("/admin/users/:username/role", a.AdminUserRoleUpdate)
	e.DELETE("/admin/users/:username", a.AdminUserDelete)
	e.GET("/admin/categories", a.AdminCategoryList)
	e.POST("/admin/categories", a.AdminCategoryCreate)
	e.PUT("/admin/categories/:name", a.AdminCategoryUpdate)
	e.DELETE("/admin/categories/:name", a.AdminCategoryDelete)
	e.GET("/admin/settings", a.AdminSettingsGet)
	e.POST("/admin/settings", a.AdminSettingsUpdate)
	e.GET("/admin/server_info", a.AdminServerInfoGet)
	e.POST("/admin/server_info", a.AdminServerInfoUpdate)
	e.GET("/admin/plugins", a.AdminPluginList)
	e.DELETE("/admin/plugins/:url", a.AdminPluginDelete)
	e.POST("/admin/plugins/:url/details", a.AdminPluginDetailsUpdate)
}
