package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Plugin struct {
	gorm.Model

	// 插件的基础信息，除 URL 外都来自平台元数据抓取
	URL         string `gorm:"column:url;uniqueIndex"` // 来源页面地址，作为插件的稳定标识
	Title       string `gorm:"column:title"`           // 标题
	Description string `gorm:"column:description"`     // 简介
	Author      string `gorm:"column:author"`          // 作者
	Icon        string `gorm:"column:icon"`            // 图标地址，可以为空

	// 兼容性信息
	Versions string         `gorm:"column:versions"`            // 支持的游戏版本，空格分隔的 token 串
	Loaders  pq.StringArray `gorm:"column:loaders;type:text[]"` // 支持的加载器

	// 归属信息
	Category string `gorm:"column:category;index"` // 所属服务器分类（按名称引用）
	Owner    string `gorm:"column:owner;index"`    // 提交插件的用户名，可以为空
}
