package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model

	Name      string `gorm:"column:name;uniqueIndex"` // 分类名称，全局唯一，插件按这个名称引用
	ImageURL  string `gorm:"column:image_url"`        // 展示用图片地址
	ShowImage bool   `gorm:"column:show_image"`       // 是否在侧边栏展示图片
	Software  string `gorm:"column:software"`         // 对应服务器软件（例如 Paper ）
	Version   string `gorm:"column:version"`          // 对应服务器版本
}
