package inits

import (
	"fmt"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vulcano-plugin-repository/app/server/constants"
	"vulcano-plugin-repository/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Plugin{},
		&models.Category{},
		&models.Setting{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始管理员
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash("admin123", argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Username: "admin",
			Role:     constants.RoleAdmin,
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 初始化设置（单行记录）
	if err = db.Model(&models.Setting{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get setting count: %w", err)
	} else if counter == 0 {
		if err = db.Create(&models.Setting{
			RegistrationEnabled: true,
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial settings: %w", err)
		}
	}

	// 初始化服务器分类
	if err = db.Model(&models.Category{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get category count: %w", err)
	} else if counter == 0 { // 没有任何分类，添加默认的一组
		defaults := []string{
			"Survival",
			"Creative",
			"PvP",
			"Economy",
			"Minigames",
			"Roleplay",
			"Adventure",
			"Hubs",
		}
		categories := make([]*models.Category, 0, len(defaults))
		for _, name := range defaults {
			categories = append(categories, &models.Category{Name: name})
		}
		if err = db.Create(categories).Error; err != nil {
			return fmt.Errorf("failed to create initial categories: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
