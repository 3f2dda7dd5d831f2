package fetchers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(zap.NewNop(), "test-api-key")
	client.ModrinthBase = server.URL
	client.SpigetBase = server.URL
	client.HangarBase = server.URL
	client.CurseForgeBase = server.URL
	client.GitHubBase = server.URL
	return client, server
}

func TestFetchModrinth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/chunky", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"title": "Chunky",
			"description": "Pre-generates chunks",
			"icon_url": "https://cdn.modrinth.com/icon.png?v=123",
			"loaders": ["Paper", "Folia"],
			"team": "team-1"
		}`))
	})
	mux.HandleFunc("/project/chunky/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"game_versions": ["1.21", "1.20.6"]},
			{"game_versions": ["1.21", "1.19.4"]}
		]`))
	})
	mux.HandleFunc("/team/team-1/members", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"user": {"username": "pop4959"}}]`))
	})

	client, _ := testClient(t, mux)
	data, err := client.Fetch(context.Background(), "https://modrinth.com/plugin/chunky")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Title != "Chunky" {
		t.Errorf("expected title Chunky, got %q", data.Title)
	}
	if data.URL != "https://modrinth.com/plugin/chunky" {
		t.Errorf("unexpected URL %q", data.URL)
	}
	if data.Author != "pop4959" {
		t.Errorf("expected author pop4959, got %q", data.Author)
	}
	if data.Icon != "https://cdn.modrinth.com/icon.png" {
		// 查询参数必须被去掉
		t.Errorf("unexpected icon %q", data.Icon)
	}
	if want := []string{"paper", "folia"}; !reflect.DeepEqual(data.Loaders, want) {
		t.Errorf("expected loaders %v, got %v", want, data.Loaders)
	}
	if want := []string{"1.19.4", "1.20.6", "1.21"}; !reflect.DeepEqual(data.Versions, want) {
		t.Errorf("expected versions %v, got %v", want, data.Versions)
	}
}

func TestFetchSpigot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/resources/9089", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "EssentialsX",
			"tag": "The essential plugin suite",
			"testedVersions": ["1.21", "1.20"],
			"icon": {"url": "data/resource_icons/9/9089.jpg"}
		}`))
	})
	mux.HandleFunc("/resources/9089/author", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "mdcfe"}`))
	})

	client, _ := testClient(t, mux)
	data, err := client.Fetch(context.Background(), "https://www.spigotmc.org/resources/essentialsx.9089/")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Title != "EssentialsX" {
		t.Errorf("expected title EssentialsX, got %q", data.Title)
	}
	if data.Author != "mdcfe" {
		t.Errorf("expected author mdcfe, got %q", data.Author)
	}
	if data.Icon != "https://www.spigotmc.org/data/resource_icons/9/9089.jpg" {
		t.Errorf("unexpected icon %q", data.Icon)
	}
	if want := []string{"bukkit", "spigot", "paper"}; !reflect.DeepEqual(data.Loaders, want) {
		t.Errorf("expected loaders %v, got %v", want, data.Loaders)
	}
	if want := []string{"1.20", "1.21"}; !reflect.DeepEqual(data.Versions, want) {
		t.Errorf("expected versions %v, got %v", want, data.Versions)
	}
}

func TestFetchHangar(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects/ViaVersion/ViaVersion", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "ViaVersion",
			"description": "Allow newer clients to join older servers",
			"avatarUrl": "https://hangarcdn.papermc.io/avatars/ViaVersion.png?v=1"
		}`))
	})
	mux.HandleFunc("/projects/ViaVersion/ViaVersion/versions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": [
			{"platformDependencies": {"PAPER": ["1.21"], "VELOCITY": ["3.3"]}},
			{"platformDependencies": {"PAPER": ["1.20.6"]}}
		]}`))
	})

	client, _ := testClient(t, mux)
	data, err := client.Fetch(context.Background(), "https://hangar.papermc.io/ViaVersion/ViaVersion")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Author != "ViaVersion" {
		t.Errorf("expected author ViaVersion, got %q", data.Author)
	}
	if want := []string{"paper", "velocity"}; !reflect.DeepEqual(data.Loaders, want) {
		t.Errorf("expected loaders %v, got %v", want, data.Loaders)
	}
	if want := []string{"1.20.6", "1.21", "3.3"}; !reflect.DeepEqual(data.Versions, want) {
		t.Errorf("expected versions %v, got %v", want, data.Versions)
	}
}

func TestFetchCurseForge(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mods/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Query().Get("gameId") != "432" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"data": [
			{"slug": "worldedit-fork", "name": "Wrong"},
			{
				"slug": "worldedit",
				"name": "WorldEdit",
				"summary": "In-game map editor",
				"logo": {"thumbnailUrl": "https://media.forgecdn.net/thumb.png?token=abc"},
				"authors": [{"name": "sk89q"}],
				"latestFilesIndexes": [
					{"gameVersion": "1.21"},
					{"gameVersion": "1.20.6"},
					{"gameVersion": "1.21"}
				]
			}
		]}`))
	})

	client, _ := testClient(t, mux)
	data, err := client.Fetch(context.Background(), "https://dev.bukkit.org/projects/worldedit")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Title != "WorldEdit" {
		// slug 完全匹配的那一条才算
		t.Errorf("expected title WorldEdit, got %q", data.Title)
	}
	if data.Author != "sk89q" {
		t.Errorf("expected author sk89q, got %q", data.Author)
	}
	if data.Icon != "https://media.forgecdn.net/thumb.png" {
		t.Errorf("unexpected icon %q", data.Icon)
	}
	if want := []string{"1.20.6", "1.21"}; !reflect.DeepEqual(data.Versions, want) {
		t.Errorf("expected versions %v, got %v", want, data.Versions)
	}
}

func TestFetchGitHub(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/EssentialsX/Essentials", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "Essentials",
			"description": "The modern Essentials suite",
			"owner": {"login": "EssentialsX", "avatar_url": "https://avatars.githubusercontent.com/u/1?v=4"}
		}`))
	})
	mux.HandleFunc("/repos/EssentialsX/Essentials/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name": "v2.21.0"},
			{"name": "2.20.1"},
			{"name": "snapshot"}
		]`))
	})

	client, _ := testClient(t, mux)
	data, err := client.Fetch(context.Background(), "https://github.com/EssentialsX/Essentials")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.Author != "EssentialsX" {
		t.Errorf("expected author EssentialsX, got %q", data.Author)
	}
	if len(data.Loaders) != 0 {
		t.Errorf("expected no loaders, got %v", data.Loaders)
	}
	if want := []string{"2.20.1", "2.21.0"}; !reflect.DeepEqual(data.Versions, want) {
		// 非版本 tag 被过滤，v 前缀被去掉
		t.Errorf("expected versions %v, got %v", want, data.Versions)
	}
}

func TestFetchUnsupportedURL(t *testing.T) {
	client := New(zap.NewNop(), "")
	if _, err := client.Fetch(context.Background(), "https://example.com/some-plugin"); err == nil {
		t.Fatal("expected error for unsupported URL, got nil")
	}
}
