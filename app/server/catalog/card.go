package catalog

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"vulcano-plugin-repository/app/server/constants"
)

// 卡片上链接文本的最大长度
const urlDisplayMaxLength = 30

// VersionBadge 是卡片上的一个版本标签，入场动画按序号错开
type VersionBadge struct {
	Version string
	Delay   string // CSS animation-delay
}

// Card 是一个插件渲染成卡片所需要的全部内容
type Card struct {
	Plugin

	Platform      string
	DisplayDomain string
	DisplayURL    string
	FirstLetter   string // 没有图标时的占位字符
	Badges        []VersionBadge
	CanDelete     bool
}

// BuildCard 把插件转换成卡片。
// viewer 为空字符串表示未登录的访问者。
func BuildCard(p Plugin, viewer, viewerRole string) Card {
	badges := make([]VersionBadge, 0, len(p.Versions))
	for i, v := range p.Versions {
		badges = append(badges, VersionBadge{
			Version: v,
			Delay:   fmt.Sprintf("%dms", i*100),
		})
	}

	return Card{
		Plugin:        p,
		Platform:      PlatformFromURL(p.URL),
		DisplayDomain: DisplayDomain(p.URL),
		DisplayURL:    TruncateURL(p.URL, urlDisplayMaxLength),
		FirstLetter:   firstLetter(p.Title),
		Badges:        badges,
		CanDelete:     CanDelete(viewer, viewerRole, p.Owner),
	}
}

// DisplayDomain 返回去掉 www. 前缀的主机名。
// URL 无法解析时原样返回，让用户看到出了什么问题。
func DisplayDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// TruncateURL 截断过长的链接文本
func TruncateURL(rawURL string, maxLength int) string {
	if len(rawURL) <= maxLength {
		return rawURL
	}
	return rawURL[:maxLength] + "..."
}

// CanDelete 判断 viewer 是否可以删除 owner 的插件
func CanDelete(viewer, viewerRole, owner string) bool {
	if viewer == "" {
		return false
	}
	if constants.StaffRole(viewerRole) {
		return true
	}
	return viewer == owner
}

func firstLetter(title string) string {
	for _, r := range title {
		if !unicode.IsSpace(r) {
			return strings.ToUpper(string(r))
		}
	}
	return "?"
}
