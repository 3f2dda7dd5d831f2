package fetchers

import (
	"context"
	"fmt"
	"sort"
)

type spigetResource struct {
	Name           string   `json:"name"`
	Tag            string   `json:"tag"`
	TestedVersions []string `json:"testedVersions"`
	Icon           struct {
		URL string `json:"url"`
	} `json:"icon"`
}

type spigetAuthor struct {
	Name string `json:"name"`
}

// fetchSpigot 通过 spiget 的镜像 API 抓取，identifier 是资源数字 ID
func (f *Client) fetchSpigot(ctx context.Context, resourceID string) (*PluginData, error) {
	var resource spigetResource
	if err := f.getJSON(ctx, fmt.Sprintf("%s/resources/%s", f.SpigetBase, resourceID), nil, &resource); err != nil {
		return nil, err
	}

	data := &PluginData{
		Title:       resource.Name,
		Description: resource.Tag,
		Versions:    append([]string(nil), resource.TestedVersions...),
		// spigot 资源不声明加载器，按惯例填最常见的
		Loaders: []string{"bukkit", "spigot", "paper"},
	}
	sort.Strings(data.Versions)

	if resource.Icon.URL != "" {
		data.Icon = stripQuery("https://www.spigotmc.org/" + resource.Icon.URL)
	}

	// 作者在单独的接口里，失败时不影响其他字段
	var author spigetAuthor
	if err := f.getJSON(ctx, fmt.Sprintf("%s/resources/%s/author", f.SpigetBase, resourceID), nil, &author); err == nil {
		data.Author = author.Name
	}

	return data, nil
}
