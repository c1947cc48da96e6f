package site

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/nav"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

func contentOptions(t *testing.T) ContentOptions {
	return ContentOptions{
		Dir:     filepath.Join(testdataDir(t), "content"),
		Include: []string{"**/*.md"},
		Exclude: []string{"**/_*.md", "**/drafts/**"},
	}
}

func loadSite(t *testing.T, navFile string) *Site {
	t.Helper()
	opts := contentOptions(t)
	s, err := New(Options{
		Name:           "Storage",
		ContentDir:     opts.Dir,
		NavigationFile: navFile,
		Include:        opts.Include,
		Exclude:        opts.Exclude,
	})
	require.NoError(t, err)
	return s
}

func TestRouteFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"index.md":                   "/",
		"guides/index.md":            "/guides",
		"guides/install.md":          "/guides/install",
		"guides/advanced/caching.md": "/guides/advanced/caching",
	}
	for in, want := range tests {
		assert.Equal(t, want, RouteFor(in), in)
	}
}

func TestNormalizeRoute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", NormalizeRoute(""))
	assert.Equal(t, "/", NormalizeRoute("/"))
	assert.Equal(t, "/guides", NormalizeRoute("/guides/"))
	assert.Equal(t, "/guides/install", NormalizeRoute("guides//install"))
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Installation", extractTitle("intro\n# Installation\n## npm", "guides/install.md"))
	assert.Equal(t, "Getting Started", extractTitle("no heading", "getting-started.md"))
	assert.Equal(t, "Guides", extractTitle("", "guides/index.md"))
	assert.Equal(t, "Home", extractTitle("", "index.md"))
	assert.Equal(t, "Real", extractTitle("```\n# not a title\n```\n# Real", "x.md"))
}

func TestLoadContent(t *testing.T) {
	t.Parallel()

	c, err := LoadContent(contentOptions(t))
	require.NoError(t, err)

	var routes []string
	for _, p := range c.Pages() {
		routes = append(routes, p.Route)
	}
	assert.Equal(t, []string{"/guides/advanced/caching", "/guides", "/guides/install", "/"}, routes)

	p, err := c.Lookup("/guides/install/")
	require.NoError(t, err)
	assert.Equal(t, "Installation", p.Title)
	assert.Equal(t, "guides/install.md", p.RelPath)

	_, err = c.Lookup("/missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadContentRouteCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guides"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guides.md"), []byte("# A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guides", "index.md"), []byte("# B"), 0o644))

	_, err := LoadContent(ContentOptions{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route /guides")
}

func TestGeneratedNavigation(t *testing.T) {
	t.Parallel()

	c, err := LoadContent(contentOptions(t))
	require.NoError(t, err)

	links, err := NavigationFor(c, "")
	require.NoError(t, err)
	require.Len(t, links, 2)

	home, ok := links[0].(*nav.Leaf)
	require.True(t, ok)
	assert.Equal(t, &nav.Leaf{Name: "Welcome", Href: "/"}, home)

	guides, ok := links[1].(*nav.Group)
	require.True(t, ok)
	assert.Equal(t, "Guides", guides.Name)
	assert.Equal(t, "/guides", guides.Href)
	assert.True(t, guides.IsCollapsible())
	require.Len(t, guides.Links, 2)

	advanced, ok := guides.Links[0].(*nav.Group)
	require.True(t, ok, "directories sort before files")
	assert.Equal(t, "Advanced", advanced.Name)
	assert.Empty(t, advanced.Href)
	assert.Equal(t, []nav.Node{&nav.Leaf{Name: "Caching", Href: "/guides/advanced/caching"}}, advanced.Links)

	assert.Equal(t, &nav.Leaf{Name: "Installation", Href: "/guides/install"}, guides.Links[1])
}

func TestAuthoredNavigation(t *testing.T) {
	t.Parallel()

	s := loadSite(t, filepath.Join(testdataDir(t), "navigation.yml"))
	require.Len(t, s.Links, 3)
	assert.Equal(t, "Overview", s.Links[0].Label())
	assert.Equal(t, "References", s.Links[2].Label())
}

func TestMarkdownRender(t *testing.T) {
	t.Parallel()

	out, err := NewMarkdown().Render([]byte("# Title\n\n## Quick start\n\nSee [install](install.md) and [npm](install.md#npm).\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"), "guides/index.md")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<h2 id="quick-start">Quick start</h2>`)
	assert.Contains(t, html, `<a href="/guides/install">install</a>`)
	assert.Contains(t, html, `<a href="/guides/install#npm">npm</a>`)
	assert.Contains(t, html, "<table>")
}

func TestMarkdownResolvesLinks(t *testing.T) {
	t.Parallel()

	md := NewMarkdown()
	tests := []struct {
		name    string
		relPath string
		dest    string
		want    string
	}{
		{"sibling from directory index", "guides/index.md", "install.md", "/guides/install"},
		{"nested from leaf page", "guides/install.md", "advanced/caching.md#ttl", "/guides/advanced/caching#ttl"},
		{"parent index", "guides/advanced/caching.md", "../index.md", "/guides"},
		{"root index", "guides/install.md", "../index.md", "/"},
		{"content root absolute", "guides/install.md", "/guides/index.md", "/guides"},
		{"generated page", "", "guides/install.md", "/guides/install"},
		{"external", "guides/index.md", "https://github.com/o/r/blob/main/README.md", "https://github.com/o/r/blob/main/README.md"},
		{"protocol relative", "guides/index.md", "//example.com/a.md", "//example.com/a.md"},
		{"fragment only", "guides/index.md", "#usage", "#usage"},
		{"non markdown", "guides/index.md", "diagram.png", "diagram.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := md.Render([]byte("[link]("+tt.dest+")"), tt.relPath)
			require.NoError(t, err)
			assert.Contains(t, string(out), `<a href="`+tt.want+`">link</a>`)
		})
	}
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	s := loadSite(t, "")

	var buf bytes.Buffer
	require.NoError(t, s.RenderPage(&buf, "/guides/install"))
	html := buf.String()

	assert.Contains(t, html, "<title>Installation | Storage</title>")
	assert.Contains(t, html, `<h2 id="npm">npm</h2>`)
	assert.Contains(t, html, `<a href="/guides/install" class="sidebar-link active">Installation</a>`)
	assert.Contains(t, html, `data-sidebar-actions="close-sidebar-overlay"`)
	assert.Contains(t, html, `<details class="sidebar-group collapsible" data-depth="0" open>`)
	assert.Contains(t, html, `/assets/style.css`)
	assert.Contains(t, html, `/assets/script.js`)

	err := s.RenderPage(&buf, "/nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRenderNotFoundEscapesRoute(t *testing.T) {
	t.Parallel()

	s := loadSite(t, "")

	var buf bytes.Buffer
	require.NoError(t, s.RenderNotFound(&buf, "/<script>"))
	assert.Contains(t, buf.String(), "Page not found")
	assert.Contains(t, buf.String(), "/&lt;script&gt;")
	assert.NotContains(t, buf.String(), "/<script>")
}

func TestLayoutWithoutSidebar(t *testing.T) {
	t.Parallel()

	l, err := NewLayout("Docs")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.Render(&buf, View{Title: "Error", Content: "<p>boom</p>"}))
	assert.NotContains(t, buf.String(), "sidebar-desktop")
	assert.Contains(t, buf.String(), "<p>boom</p>")
}

type recordingReporter struct {
	total    int
	updates  int
	finished bool
}

func (r *recordingReporter) Start(total int)    { r.total = total }
func (r *recordingReporter) Update(int, string) { r.updates++ }
func (r *recordingReporter) Finish()            { r.finished = true }

func TestBuild(t *testing.T) {
	t.Parallel()

	s := loadSite(t, "")
	out := t.TempDir()
	rep := &recordingReporter{}

	// A single worker keeps the recording reporter free of races.
	b := &Builder{Site: s, OutputDir: out, Reporter: rep, Concurrency: 1}
	n, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, rep.total)
	assert.Equal(t, 4, rep.updates)
	assert.True(t, rep.finished)

	for _, rel := range []string{
		"index.html",
		"guides/index.html",
		"guides/install/index.html",
		"guides/advanced/caching/index.html",
		"assets/style.css",
		"assets/script.js",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}

	data, err := os.ReadFile(filepath.Join(out, "guides", "advanced", "caching", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<h2 id="invalidation">Invalidation</h2>`)
}

func TestBuildEmptyContent(t *testing.T) {
	t.Parallel()

	s, err := New(Options{Name: "Empty", ContentDir: t.TempDir()})
	require.NoError(t, err)

	_, err = (&Builder{Site: s, OutputDir: t.TempDir()}).Build(context.Background())
	assert.Error(t, err)
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("out", "index.html"), PagePath("out", "/"))
	assert.Equal(t, filepath.Join("out", "guides", "install", "index.html"), PagePath("out", "/guides/install"))
}

func TestAssets(t *testing.T) {
	require.Contains(t, Assets, "style.css")
	require.Contains(t, Assets, "script.js")

	script := Assets["script.js"]
	assert.Contains(t, script.ContentType, "javascript")
	assert.Contains(t, script.Body, `document.body.style.overflow = open ? "hidden" : "auto"`)
	assert.Contains(t, script.Body, `"close-sidebar-overlay"`)
	assert.Contains(t, Assets["style.css"].ContentType, "text/css")
}
