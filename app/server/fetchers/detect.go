package fetchers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// 平台内部标识，决定走哪个 API
const (
	sourceModrinth   = "modrinth"
	sourceSpigot     = "spigot"
	sourceHangar     = "hangar"
	sourceCurseForge = "curseforge"
	sourceGitHub     = "github"
)

var (
	modrinthSlugPattern   = regexp.MustCompile(`/(plugin|mod)/([^/]+)`)
	spigotResourcePattern = regexp.MustCompile(`/resources/[^/]+\.(\d+)/?`)
	hangarSlugPattern     = regexp.MustCompile(`^/([^/]+)/([^/]+)`)
	bukkitProjectPattern  = regexp.MustCompile(`/projects/([^/]+)`)
	curseforgeSlugPattern = regexp.MustCompile(`^/(?:minecraft/)?([^/]+)/([^/]+)`)
	githubRepoPattern     = regexp.MustCompile(`^/([^/]+)/([^/]+)`)
)

// Detect 从插件 URL 判断来源平台和平台内的标识符。
// dev.bukkit.org 的项目走 CurseForge 的 API 。
func Detect(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("parse url: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	path := u.Path

	switch {
	case strings.Contains(host, "modrinth.com"):
		if m := modrinthSlugPattern.FindStringSubmatch(path); m != nil {
			return sourceModrinth, m[2], nil
		}

	case strings.Contains(host, "spigotmc.org"):
		if m := spigotResourcePattern.FindStringSubmatch(path); m != nil {
			return sourceSpigot, m[1], nil
		}

	case strings.Contains(host, "hangar.papermc.io"):
		if m := hangarSlugPattern.FindStringSubmatch(path); m != nil {
			return sourceHangar, m[1] + "/" + m[2], nil
		}

	case strings.Contains(host, "dev.bukkit.org"):
		if m := bukkitProjectPattern.FindStringSubmatch(path); m != nil {
			return sourceCurseForge, m[1], nil
		}

	case strings.Contains(host, "curseforge.com"):
		if m := curseforgeSlugPattern.FindStringSubmatch(path); m != nil {
			return sourceCurseForge, m[2], nil
		}

	case strings.Contains(host, "github.com"):
		if m := githubRepoPattern.FindStringSubmatch(path); m != nil {
			// 去掉仓库名上可能带着的 .git 后缀
			return sourceGitHub, m[1] + "/" + strings.TrimSuffix(m[2], ".git"), nil
		}
	}

	return "", "", fmt.Errorf("unsupported plugin url: %s", rawURL)
}
