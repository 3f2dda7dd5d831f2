package constants

import "time"

// 用户角色
const (
	RoleUser    = "user"
	RoleCoAdmin = "co-admin"
	RoleAdmin   = "admin"
)

const (
	SessionCookieName = "vulcano_session" // 会话 cookie 的名称
	SessionDuration   = 7 * 24 * time.Hour
)

// ValidRole 检查角色值是否是已知的枚举之一
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleCoAdmin, RoleAdmin:
		return true
	default:
		return false
	}
}

// StaffRole 检查角色是否可以进入管理面板
func StaffRole(role string) bool {
	return role == RoleAdmin || role == RoleCoAdmin
}
