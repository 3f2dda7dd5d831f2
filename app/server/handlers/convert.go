package handlers

import (
	"strings"

	"github.com/lib/pq"

	"vulcano-plugin-repository/app/server/catalog"
	"vulcano-plugin-repository/app/server/fetchers"
	"vulcano-plugin-repository/app/server/models"
)

// pluginEntry 把数据库记录转换成对外的插件结构
func pluginEntry(p *models.Plugin) catalog.Plugin {
	return catalog.Plugin{
		URL:         p.URL,
		Title:       p.Title,
		Description: p.Description,
		Author:      p.Author,
		Icon:        p.Icon,
		Versions:    strings.Fields(p.Versions),
		Loaders:     append([]string{}, p.Loaders...),
		Category:    p.Category,
		Owner:       p.Owner,
	}
}

func pluginEntries(plugins []models.Plugin) []catalog.Plugin {
	entries := make([]catalog.Plugin, 0, len(plugins))
	for i := range plugins {
		entries = append(entries, pluginEntry(&plugins[i]))
	}
	return entries
}

// pluginModelFromData 把抓取结果转换成数据库记录
func pluginModelFromData(data *fetchers.PluginData, category, owner string) models.Plugin {
	return models.Plugin{
		URL:         data.URL,
		Title:       data.Title,
		Description: data.Description,
		Author:      data.Author,
		Icon:        data.Icon,
		Versions:    strings.Join(data.Versions, " "),
		Loaders:     pq.StringArray(data.Loaders),
		Category:    category,
		Owner:       owner,
	}
}
