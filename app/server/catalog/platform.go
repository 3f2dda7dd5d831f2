package catalog

import (
	"net/url"
	"strings"
)

// 插件托管平台
const (
	PlatformHangar          = "hangar"
	PlatformSpigot          = "spigot"
	PlatformModrinth        = "modrinth"
	PlatformBukkitDev       = "bukkitdev"
	PlatformGitHub          = "github"
	PlatformCurseForge      = "curseforge"
	PlatformPlanetMinecraft = "planetminecraft"
	PlatformUnknown         = "unknown"
)

var platformByHost = map[string]string{
	"hangar.papermc.io":  PlatformHangar,
	"spigotmc.org":       PlatformSpigot,
	"modrinth.com":       PlatformModrinth,
	"dev.bukkit.org":     PlatformBukkitDev,
	"github.com":         PlatformGitHub,
	"curseforge.com":     PlatformCurseForge,
	"planetminecraft.com": PlatformPlanetMinecraft,
}

// PlatformOptions 返回过滤面板上平台复选框的固定顺序
func PlatformOptions() []string {
	return []string{
		PlatformHangar,
		PlatformSpigot,
		PlatformModrinth,
		PlatformBukkitDev,
		PlatformGitHub,
		PlatformCurseForge,
		PlatformPlanetMinecraft,
		PlatformUnknown,
	}
}

// PlatformFromURL 根据主机名判断插件来自哪个平台，子域名（forums.spigotmc.org 等）也算
func PlatformFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return PlatformUnknown
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	if platform, ok := platformByHost[host]; ok {
		return platform
	}
	for domain, platform := range platformByHost {
		if strings.HasSuffix(host, "."+domain) {
			return platform
		}
	}
	return PlatformUnknown
}
