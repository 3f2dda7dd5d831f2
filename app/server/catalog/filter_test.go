package catalog

import (
	"reflect"
	"testing"
)

var testPlugins = []Plugin{
	{
		URL:         "https://www.spigotmc.org/resources/essentialsx.9089/",
		Title:       "EssentialsX",
		Description: "The essential plugin suite for Minecraft servers",
		Author:      "mdcfe",
		Versions:    []string{"1.21.4", "1.21", "1.20.6"},
		Loaders:     []string{"spigot", "paper"},
		Category:    "Survival",
		Owner:       "alice",
	},
	{
		URL:         "https://modrinth.com/plugin/chunky",
		Title:       "Chunky",
		Description: "Pre-generates chunks, quickly and efficiently",
		Author:      "pop4959",
		Versions:    []string{"1.21.4", "1.20.6"},
		Loaders:     []string{"paper", "folia"},
		Category:    "Survival",
		Owner:       "bob",
	},
	{
		URL:         "https://hangar.papermc.io/ViaVersion/ViaVersion",
		Title:       "ViaVersion",
		Description: "Allow newer clients to join older server versions",
		Author:      "ViaVersion",
		Versions:    []string{"1.21"},
		Loaders:     []string{"paper", "velocity"},
		Category:    "PvP",
		Owner:       "alice",
	},
	{
		URL:         "https://example.com/some-plugin",
		Title:       "Obscure Plugin",
		Description: "Hosted somewhere nobody knows",
		Author:      "carol",
		Versions:    []string{"beta-3"},
		Loaders:     []string{"spigot"},
		Category:    "Minigames",
		Owner:       "carol",
	},
}

func titles(plugins []Plugin) []string {
	out := make([]string, 0, len(plugins))
	for _, p := range plugins {
		out = append(out, p.Title)
	}
	return out
}

func TestApplyZeroStateKeepsEverything(t *testing.T) {
	got := State{}.Apply(testPlugins)
	if len(got) != len(testPlugins) {
		t.Fatalf("expected %d plugins, got %d", len(testPlugins), len(got))
	}
	if !reflect.DeepEqual(titles(got), titles(testPlugins)) {
		t.Errorf("expected input order preserved, got %v", titles(got))
	}
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"chunk", []string{"Chunky"}},           // 描述里也算
		{"CHUNKY", []string{"Chunky"}},          // 不区分大小写
		{"alice", nil},                          // 不搜索 owner
		{"carol", []string{"Obscure Plugin"}},   // 作者
		{"plugin", []string{"EssentialsX", "Obscure Plugin"}},
		{"no-such-text", nil},
	}

	for _, tt := range tests {
		got := titles(State{Search: tt.search}.Apply(testPlugins))
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("search %q: expected %v, got %v", tt.search, tt.want, got)
		}
	}
}

func TestApplyVersionExactMembership(t *testing.T) {
	got := titles(State{Version: "1.21"}.Apply(testPlugins))
	want := []string{"EssentialsX", "ViaVersion"}
	if !reflect.DeepEqual(got, want) {
		// 1.21.4 不应该算作 1.21
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApplyPlatforms(t *testing.T) {
	got := titles(State{Platforms: []string{PlatformSpigot, PlatformUnknown}}.Apply(testPlugins))
	want := []string{"EssentialsX", "Obscure Plugin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// 空选择等价于全部
	if got := (State{Platforms: []string{}}).Apply(testPlugins); len(got) != len(testPlugins) {
		t.Errorf("empty platform selection should match all, got %d", len(got))
	}
}

func TestApplyLoadersIntersection(t *testing.T) {
	got := titles(State{Loaders: []string{"folia", "velocity"}}.Apply(testPlugins))
	want := []string{"Chunky", "ViaVersion"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := (State{Loaders: []string{}}).Apply(testPlugins); len(got) != len(testPlugins) {
		t.Errorf("empty loader selection should match all, got %d", len(got))
	}
}

func TestApplyCategory(t *testing.T) {
	got := titles(State{Category: "Survival"}.Apply(testPlugins))
	want := []string{"EssentialsX", "Chunky"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := (State{Category: ""}).Apply(testPlugins); len(got) != len(testPlugins) {
		t.Errorf("empty category should match all, got %d", len(got))
	}
}

func TestApplyConjunction(t *testing.T) {
	s := State{
		Search:    "e",
		Version:   "1.21.4",
		Platforms: []string{PlatformSpigot, PlatformModrinth},
		Loaders:   []string{"paper"},
		Category:  "Survival",
	}
	got := titles(s.Apply(testPlugins))
	want := []string{"EssentialsX", "Chunky"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExcludePartitionsCatalog(t *testing.T) {
	// include 和 exclude 的结果必须是全集的一个划分
	states := []State{
		{},
		{Search: "chunk"},
		{Version: "1.21"},
		{Platforms: []string{PlatformHangar}},
		{Loaders: []string{"spigot"}},
		{Category: "PvP"},
		{Search: "plugin", Category: "Survival"},
	}

	for _, s := range states {
		included := s.Apply(testPlugins)
		s.Exclude = true
		excluded := s.Apply(testPlugins)

		if len(included)+len(excluded) != len(testPlugins) {
			t.Errorf("state %+v: %d included + %d excluded != %d total",
				s, len(included), len(excluded), len(testPlugins))
		}

		seen := make(map[string]bool)
		for _, p := range included {
			seen[p.URL] = true
		}
		for _, p := range excluded {
			if seen[p.URL] {
				t.Errorf("state %+v: plugin %s appears in both halves", s, p.URL)
			}
		}
	}
}
