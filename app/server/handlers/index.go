package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vulcano-plugin-repository/app/server/catalog"
	"vulcano-plugin-repository/app/server/models"
)

var indexTemplate = template.Must(template.New("index").
	Funcs(template.FuncMap{"has": hasOption}).
	Parse(indexPageTemplate))

// hasOption 判断复选框的值是否在当前过滤条件里
func hasOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

type indexPageData struct {
	Cards          []catalog.Card
	Categories     []categoryEntry
	CategoryCounts map[string]int
	Versions       []string
	Platforms      []string
	Loaders        []string
	Filter         catalog.State
	Viewer         string
	ViewerRole     string
	LoggedIn       bool
}

// Index 渲染插件目录首页，过滤条件来自查询参数
func (a *App) Index(c echo.Context) error {
	rctx := c.Request().Context()

	var plugins []models.Plugin
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&plugins).Error; err != nil {
		a.l.Error("failed to get plugin list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	var categories []models.Category
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&categories).Error; err != nil {
		a.l.Error("failed to get categories", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 从查询参数构造过滤条件
	params := c.QueryParams()
	filter := catalog.State{
		Search:    c.QueryParam("search"),
		Version:   c.QueryParam("version"),
		Platforms: params["platform"],
		Loaders:   params["loader"],
		Category:  c.QueryParam("category"),
		Exclude:   c.QueryParam("exclude") == "1",
	}

	entries := pluginEntries(plugins)

	viewer := ""
	viewerRole := ""
	if s := a.currentSession(c); s != nil {
		viewer = s.Username
		viewerRole = s.Role
	}

	matched := filter.Apply(entries)
	cards := make([]catalog.Card, 0, len(matched))
	for _, entry := range matched {
		cards = append(cards, catalog.BuildCard(entry, viewer, viewerRole))
	}

	data := indexPageData{
		Cards:          cards,
		Categories:     categoryEntries(categories),
		CategoryCounts: catalog.CategoryCounts(entries),
		Versions:       catalog.VersionOptions(entries),
		Platforms:      catalog.PlatformOptions(),
		Loaders:        catalog.LoaderOptions(entries),
		Filter:         filter,
		Viewer:         viewer,
		ViewerRole:     viewerRole,
		LoggedIn:       viewer != "",
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, &data); err != nil {
		a.l.Error("failed to render index page", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.HTML(http.StatusOK, buf.String())
}

const indexPageTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Vulcano Plugin Repository</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <header>
      <h1>Vulcano Plugin Repository</h1>
      {{ if .LoggedIn }}<span class="user">{{ .Viewer }}</span>{{ end }}
    </header>

    <nav class="categories">
      <a href="/"{{ if not .Filter.Category }} class="active"{{ end }}>All</a>
      {{ $counts := .CategoryCounts }}
      {{ $active := .Filter.Category }}
      {{ range .Categories }}
      <a href="/?category={{ .Name }}"{{ if eq .Name $active }} class="active"{{ end }}>
        {{ .Name }} ({{ index $counts .Name }})
        {{ if .Software }}<small>{{ .Software }} {{ .Version }}</small>{{ end }}
      </a>
      {{ end }}
    </nav>

    <form class="filters" method="get" action="/">
      <input type="search" name="search" value="{{ .Filter.Search }}" placeholder="Search plugins...">
      <select name="version">
        <option value="">All versions</option>
        {{ range .Versions }}<option value="{{ . }}"{{ if eq . $.Filter.Version }} selected{{ end }}>{{ . }}</option>{{ end }}
      </select>
      {{ range .Platforms }}
      <label><input type="checkbox" name="platform" value="{{ . }}"{{ if has $.Filter.Platforms . }} checked{{ end }}> {{ . }}</label>
      {{ end }}
      {{ range .Loaders }}
      <label><input type="checkbox" name="loader" value="{{ . }}"{{ if has $.Filter.Loaders . }} checked{{ end }}> {{ . }}</label>
      {{ end }}
      <label><input type="checkbox" name="exclude" value="1"{{ if .Filter.Exclude }} checked{{ end }}> Exclude</label>
      <button type="submit">Filter</button>
    </form>

    <main class="plugin-grid">
      {{ range .Cards }}
      <article class="plugin-card" data-platform="{{ .Platform }}">
        {{ if .Icon }}
        <img class="icon" src="{{ .Icon }}" alt="">
        {{ else }}
        <div class="icon placeholder">{{ .FirstLetter }}</div>
        {{ end }}
        <h2>{{ .Title }}</h2>
        <p class="author">{{ .Author }}</p>
        <p class="description">{{ .Description }}</p>
        <div class="badges">
          {{ range .Badges }}
          <span class="badge" style="animation-delay: {{ .Delay }}">{{ .Version }}</span>
          {{ end }}
        </div>
        <a class="source" href="{{ .URL }}" title="{{ .DisplayDomain }}">{{ .DisplayURL }}</a>
        {{ if .CanDelete }}
        <button class="delete" data-url="{{ .URL }}">Delete</button>
        {{ end }}
      </article>
      {{ else }}
      <p class="empty">No plugins found.</p>
      {{ end }}
    </main>
  </body>
</html>`
