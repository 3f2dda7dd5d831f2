package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一
	Role     string `gorm:"column:role"`                 // 角色： user / co-admin / admin

	// 登录认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
