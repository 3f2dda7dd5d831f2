package inits

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 打开数据库连接。表结构由 server 负责迁移，这里只是使用。
func DB(connString string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(connString), &gorm.Config{})
}
