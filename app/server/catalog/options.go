package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// VersionOptions 收集所有插件出现过的版本号，去重后按新到旧排序。
// 形如 1.21.4 的版本按数字比较，其他字符串排在后面按字典序倒序。
func VersionOptions(plugins []Plugin) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, p := range plugins {
		for _, v := range p.Versions {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			options = append(options, v)
		}
	}

	sort.Slice(options, func(i, j int) bool {
		return compareVersions(options[i], options[j]) > 0
	})
	return options
}

// LoaderOptions 收集所有插件出现过的加载器，去重后按字典序排序
func LoaderOptions(plugins []Plugin) []string {
	seen := make(map[string]struct{})
	var options []string
	for _, p := range plugins {
		for _, l := range p.Loaders {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			options = append(options, l)
		}
	}

	sort.Strings(options)
	return options
}

// CategoryCounts 统计每个分类下的插件数量
func CategoryCounts(plugins []Plugin) map[string]int {
	counts := make(map[string]int)
	for _, p := range plugins {
		counts[p.Category]++
	}
	return counts
}

// compareVersions 比较两个版本号。
// 返回正数表示 a 更新，负数表示 b 更新。
func compareVersions(a, b string) int {
	as, aNumeric := splitNumeric(a)
	bs, bNumeric := splitNumeric(b)

	// 数字版本排在非数字字符串前面
	if aNumeric != bNumeric {
		if aNumeric {
			return 1
		}
		return -1
	}
	if !aNumeric {
		return strings.Compare(a, b)
	}

	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an = as[i]
		}
		if i < len(bs) {
			bn = bs[i]
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}

func splitNumeric(version string) ([]int, bool) {
	parts := strings.Split(version, ".")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}
