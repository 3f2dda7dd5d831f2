package fetchers

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type hangarProject struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
}

type hangarVersions struct {
	Result []struct {
		PlatformDependencies map[string][]string `json:"platformDependencies"`
	} `json:"result"`
}

func (f *Client) fetchHangar(ctx context.Context, identifier string) (*PluginData, error) {
	var project hangarProject
	if err := f.getJSON(ctx, fmt.Sprintf("%s/projects/%s", f.HangarBase, identifier), nil, &project); err != nil {
		return nil, err
	}

	data := &PluginData{
		Title:       project.Name,
		Description: project.Description,
		Icon:        stripQuery(project.AvatarURL),
	}

	// 标识符的前半段是作者
	if owner, _, ok := strings.Cut(identifier, "/"); ok {
		data.Author = owner
	}

	var versions hangarVersions
	if err := f.getJSON(ctx, fmt.Sprintf("%s/projects/%s/versions", f.HangarBase, identifier), nil, &versions); err != nil {
		return nil, err
	}

	versionSet := make(map[string]struct{})
	loaderSet := make(map[string]struct{})
	for _, v := range versions.Result {
		// platformDependencies 的键是加载器名，值是支持的游戏版本
		for loader, deps := range v.PlatformDependencies {
			loaderSet[strings.ToLower(loader)] = struct{}{}
			for _, dep := range deps {
				versionSet[dep] = struct{}{}
			}
		}
	}
	for v := range versionSet {
		data.Versions = append(data.Versions, v)
	}
	sort.Strings(data.Versions)

	if strings.EqualFold(identifier, "papermc/velocity") {
		// Velocity 本身是代理，平台依赖列表不反映实际用途
		data.Loaders = []string{"velocity", "waterfall", "paper"}
	} else {
		for l := range loaderSet {
			data.Loaders = append(data.Loaders, l)
		}
		sort.Strings(data.Loaders)
	}

	return data, nil
}
