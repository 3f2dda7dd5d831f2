package fetchers

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type modrinthProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IconURL     string   `json:"icon_url"`
	Loaders     []string `json:"loaders"`
	Team        string   `json:"team"`
}

type modrinthVersion struct {
	GameVersions []string `json:"game_versions"`
}

type modrinthTeamMember struct {
	User struct {
		Username string `json:"username"`
	} `json:"user"`
}

func (f *Client) fetchModrinth(ctx context.Context, slug string) (*PluginData, error) {
	var project modrinthProject
	if err := f.getJSON(ctx, fmt.Sprintf("%s/project/%s", f.ModrinthBase, slug), nil, &project); err != nil {
		return nil, err
	}

	data := &PluginData{
		Title:       project.Title,
		Description: project.Description,
		Icon:        stripQuery(project.IconURL),
	}
	for _, loader := range project.Loaders {
		data.Loaders = append(data.Loaders, strings.ToLower(loader))
	}

	// 游戏版本在单独的接口里
	var versions []modrinthVersion
	if err := f.getJSON(ctx, fmt.Sprintf("%s/project/%s/version", f.ModrinthBase, slug), nil, &versions); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, v := range versions {
		for _, gv := range v.GameVersions {
			if _, ok := seen[gv]; !ok {
				seen[gv] = struct{}{}
				data.Versions = append(data.Versions, gv)
			}
		}
	}
	sort.Strings(data.Versions)

	// 作者是团队成员列表
	if project.Team != "" {
		var members []modrinthTeamMember
		if err := f.getJSON(ctx, fmt.Sprintf("%s/team/%s/members", f.ModrinthBase, project.Team), nil, &members); err == nil {
			var authors []string
			for _, member := range members {
				if member.User.Username != "" {
					authors = append(authors, member.User.Username)
				}
			}
			data.Author = strings.Join(authors, " ")
		}
	}

	return data, nil
}
