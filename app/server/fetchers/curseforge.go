package fetchers

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Minecraft 在 CurseForge 上的游戏 ID
const curseforgeGameID = "432"

type curseforgeSearch struct {
	Data []struct {
		Slug    string `json:"slug"`
		Name    string `json:"name"`
		Summary string `json:"summary"`
		Logo    struct {
			ThumbnailURL string `json:"thumbnailUrl"`
			URL          string `json:"url"`
		} `json:"logo"`
		Authors []struct {
			Name string `json:"name"`
		} `json:"authors"`
		LatestFilesIndexes []struct {
			GameVersion string `json:"gameVersion"`
		} `json:"latestFilesIndexes"`
	} `json:"data"`
}

// fetchCurseForge 覆盖 curseforge.com 和 dev.bukkit.org 两类地址
func (f *Client) fetchCurseForge(ctx context.Context, slug string) (*PluginData, error) {
	searchURL := fmt.Sprintf("%s/mods/search?gameId=%s&slug=%s", f.CurseForgeBase, curseforgeGameID, url.QueryEscape(slug))
	headers := map[string]string{
		"Accept":    "application/json",
		"x-api-key": f.curseforgeKey,
	}

	var search curseforgeSearch
	if err := f.getJSON(ctx, searchURL, headers, &search); err != nil {
		return nil, err
	}

	// 搜索可能返回多个结果，取 slug 完全匹配的那个
	for _, mod := range search.Data {
		if mod.Slug != slug {
			continue
		}

		data := &PluginData{
			Title:       mod.Name,
			Description: mod.Summary,
			Loaders:     []string{"bukkit", "spigot", "paper"},
		}

		icon := mod.Logo.ThumbnailURL
		if icon == "" {
			icon = mod.Logo.URL
		}
		data.Icon = stripQuery(icon)

		var authors []string
		for _, author := range mod.Authors {
			if author.Name != "" {
				authors = append(authors, author.Name)
			}
		}
		data.Author = strings.Join(authors, " ")

		seen := make(map[string]struct{})
		for _, file := range mod.LatestFilesIndexes {
			if file.GameVersion == "" {
				continue
			}
			if _, ok := seen[file.GameVersion]; !ok {
				seen[file.GameVersion] = struct{}{}
				data.Versions = append(data.Versions, file.GameVersion)
			}
		}
		sort.Strings(data.Versions)

		return data, nil
	}

	return nil, fmt.Errorf("no mod found with slug %s", slug)
}
