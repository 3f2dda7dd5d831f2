package models

import "gorm.io/gorm"

// Setting 是单行记录，站点级开关都放在这里
type Setting struct {
	gorm.Model

	RegistrationEnabled bool `gorm:"column:registration_enabled"` // 是否开放新用户注册
}
