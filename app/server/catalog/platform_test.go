package catalog

import "testing"

func TestPlatformFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://hangar.papermc.io/ViaVersion/ViaVersion", PlatformHangar},
		{"https://www.spigotmc.org/resources/essentialsx.9089/", PlatformSpigot},
		{"https://spigotmc.org/resources/essentialsx.9089/", PlatformSpigot},
		{"https://modrinth.com/plugin/chunky", PlatformModrinth},
		{"https://dev.bukkit.org/projects/worldedit", PlatformBukkitDev},
		{"https://github.com/EssentialsX/Essentials", PlatformGitHub},
		{"https://www.curseforge.com/minecraft/bukkit-plugins/worldedit", PlatformCurseForge},
		{"https://www.planetminecraft.com/mod/some-plugin/", PlatformPlanetMinecraft},
		{"https://forums.spigotmc.org/threads/essentialsx.12345/", PlatformSpigot}, // 子域名
		{"https://legacy.curseforge.com/minecraft/bukkit-plugins/worldedit", PlatformCurseForge},
		{"https://spigotmc.org.example.com/fake", PlatformUnknown}, // 只看主机名后缀，不能被前缀骗过
		{"https://example.com/some-plugin", PlatformUnknown},
		{"not a url", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, tt := range tests {
		if got := PlatformFromURL(tt.url); got != tt.want {
			t.Errorf("PlatformFromURL(%q) = %q, expected %q", tt.url, got, tt.want)
		}
	}
}
