package fetchers

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

type githubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

type githubTag struct {
	Name string `json:"name"`
}

var githubVersionTagPattern = regexp.MustCompile(`^v?\d`)

func (f *Client) fetchGitHub(ctx context.Context, identifier string) (*PluginData, error) {
	var repo githubRepo
	if err := f.getJSON(ctx, fmt.Sprintf("%s/repos/%s", f.GitHubBase, identifier), nil, &repo); err != nil {
		return nil, err
	}

	data := &PluginData{
		Title:       repo.Name,
		Description: repo.Description,
		Author:      repo.Owner.Login,
		Icon:        stripQuery(repo.Owner.AvatarURL),
		// 仓库本身判断不了加载器
		Loaders: []string{},
	}

	// 版本号来自 tag ，过滤掉非数字开头的
	var tags []githubTag
	if err := f.getJSON(ctx, fmt.Sprintf("%s/repos/%s/tags", f.GitHubBase, identifier), nil, &tags); err == nil {
		for _, tag := range tags {
			if githubVersionTagPattern.MatchString(tag.Name) {
				data.Versions = append(data.Versions, strings.TrimPrefix(tag.Name, "v"))
			}
		}
		sort.Strings(data.Versions)
	}

	return data, nil
}
