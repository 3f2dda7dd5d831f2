package catalog

import "strings"

// Plugin 是过滤和展示逻辑使用的纯值类型，不带数据库字段
type Plugin struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Icon        string   `json:"icon"`
	Versions    []string `json:"versions"`
	Loaders     []string `json:"loaders"`
	Category    string   `json:"category"`
	Owner       string   `json:"owner,omitempty"`
}

// State 表示一组过滤条件。零值不过滤任何插件。
type State struct {
	Search    string   // 标题、描述、作者上的子串搜索，不区分大小写
	Version   string   // 必须出现在插件的版本列表里
	Platforms []string // 勾选的平台，空切片表示全部
	Loaders   []string // 勾选的加载器，空切片表示全部
	Category  string   // 空字符串表示全部分类
	Exclude   bool     // 反转整个匹配结果
}

// Apply 返回满足过滤条件的插件，保持输入顺序
func (s State) Apply(plugins []Plugin) []Plugin {
	matched := make([]Plugin, 0, len(plugins))
	for _, p := range plugins {
		if s.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Matches 判断单个插件是否满足过滤条件。
// 各个条件之间是与的关系，Exclude 为真时取反。
func (s State) Matches(p Plugin) bool {
	ok := s.matchSearch(p) &&
		s.matchVersion(p) &&
		s.matchPlatform(p) &&
		s.matchLoader(p) &&
		s.matchCategory(p)

	if s.Exclude {
		return !ok
	}
	return ok
}

func (s State) matchSearch(p Plugin) bool {
	if s.Search == "" {
		return true
	}

	needle := strings.ToLower(s.Search)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Author), needle)
}

func (s State) matchVersion(p Plugin) bool {
	if s.Version == "" {
		return true
	}

	for _, v := range p.Versions {
		if v == s.Version {
			return true
		}
	}
	return false
}

func (s State) matchPlatform(p Plugin) bool {
	// 没有勾选任何平台时不限制
	if len(s.Platforms) == 0 {
		return true
	}

	platform := PlatformFromURL(p.URL)
	for _, want := range s.Platforms {
		if want == platform {
			return true
		}
	}
	return false
}

func (s State) matchLoader(p Plugin) bool {
	if len(s.Loaders) == 0 {
		return true
	}

	// 有交集就算匹配
	for _, want := range s.Loaders {
		for _, have := range p.Loaders {
			if want == have {
				return true
			}
		}
	}
	return false
}

func (s State) matchCategory(p Plugin) bool {
	if s.Category == "" {
		return true
	}
	return p.Category == s.Category
}
