package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// PluginData 是从托管平台抓取到的插件元数据
type PluginData struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Icon        string   `json:"icon"`
	Versions    []string `json:"versions"`
	Loaders     []string `json:"loaders"`
}

// Client 封装对各个插件托管平台 API 的请求。
// Base 系列字段在测试里指向 httptest 服务。
type Client struct {
	ModrinthBase   string
	SpigetBase     string
	HangarBase     string
	CurseForgeBase string
	GitHubBase     string

	hc            *http.Client
	l             *zap.Logger
	curseforgeKey string
}

func New(l *zap.Logger, curseforgeKey string) *Client {
	return &Client{
		ModrinthBase:   "https://api.modrinth.com/v2",
		SpigetBase:     "https://api.spiget.org/v2",
		HangarBase:     "https://hangar.papermc.io/api/v1",
		CurseForgeBase: "https://api.curseforge.com/v1",
		GitHubBase:     "https://api.github.com",

		hc: &http.Client{
			Timeout: 30 * time.Second,
		},
		l:             l,
		curseforgeKey: curseforgeKey,
	}
}

// Fetch 根据插件 URL 抓取完整的元数据
func (f *Client) Fetch(ctx context.Context, rawURL string) (*PluginData, error) {
	source, identifier, err := Detect(rawURL)
	if err != nil {
		return nil, err
	}

	var data *PluginData
	switch source {
	case sourceModrinth:
		data, err = f.fetchModrinth(ctx, identifier)
	case sourceSpigot:
		data, err = f.fetchSpigot(ctx, identifier)
	case sourceHangar:
		data, err = f.fetchHangar(ctx, identifier)
	case sourceCurseForge:
		data, err = f.fetchCurseForge(ctx, identifier)
	case sourceGitHub:
		data, err = f.fetchGitHub(ctx, identifier)
	default:
		return nil, fmt.Errorf("unsupported source: %s", source)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s plugin %s: %w", source, identifier, err)
	}

	data.URL = rawURL
	if data.Versions == nil {
		data.Versions = []string{}
	}
	if data.Loaders == nil {
		data.Loaders = []string{}
	}

	return data, nil
}

// getJSON 发起 GET 请求并把响应体解析成 out
func (f *Client) getJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "vulcano-plugin-repository")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, res.Body)
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// stripQuery 去掉图标链接上的查询参数，缓存代理加的签名会过期
func stripQuery(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
