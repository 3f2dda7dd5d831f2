package catalog

import (
	"reflect"
	"testing"
)

func TestVersionOptions(t *testing.T) {
	got := VersionOptions(testPlugins)
	want := []string{"1.21.4", "1.21", "1.20.6", "beta-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestVersionOptionsNumericOrder(t *testing.T) {
	plugins := []Plugin{
		{Versions: []string{"1.9", "1.10", "1.21.1", "1.21.10", "1.21.2"}},
	}
	got := VersionOptions(plugins)
	want := []string{"1.21.10", "1.21.2", "1.21.1", "1.10", "1.9"}
	if !reflect.DeepEqual(got, want) {
		// 1.10 必须排在 1.9 前面，不能按字符串比较
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoaderOptions(t *testing.T) {
	got := LoaderOptions(testPlugins)
	want := []string{"folia", "paper", "spigot", "velocity"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCategoryCounts(t *testing.T) {
	got := CategoryCounts(testPlugins)
	want := map[string]int{"Survival": 2, "PvP": 1, "Minigames": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
