package search_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/config"
	"github.com/ziadkadry99/docsite/internal/fetch"
	"github.com/ziadkadry99/docsite/internal/logger"
	"github.com/ziadkadry99/docsite/internal/reference"
	"github.com/ziadkadry99/docsite/internal/search"
	"github.com/ziadkadry99/docsite/internal/site"
)

func loadSite(t *testing.T) *site.Site {
	t.Helper()
	s, err := site.New(site.Options{
		Name:       "Storage",
		ContentDir: filepath.Join("..", "..", "testdata", "content"),
		Include:    []string{"**/*.md"},
		Exclude:    []string{"**/_*.md", "**/drafts/**"},
	})
	require.NoError(t, err)
	return s
}

func referenceService(t *testing.T) *reference.Service {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "typedoc", "testdata", "storage.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)

	return reference.NewService(
		[]config.ReferenceSource{{Slug: "storage", Name: "Storage", URL: srv.URL}},
		fetch.NewClient(),
		reference.WithLogger(logger.Discard()),
	)
}

func TestParseSections(t *testing.T) {
	t.Parallel()

	body := `<h1 id="installation">Installation</h1>
<p>Add the package
  with your package manager.</p>
<h2 id="npm">npm</h2>
<p>Run <code>npm install</code>.</p>
<h2 id="yarn">yarn</h2>
<h3 id="peer-dependencies">Peer dependencies</h3>
<ul><li>None</li></ul>`

	page, err := search.Parse("Installation", "/guides/install", body)
	require.NoError(t, err)

	assert.Equal(t, "Installation", page.Title)
	assert.Equal(t, "/guides/install", page.Href)
	assert.Equal(t, []search.SectionData{
		{Title: "", Href: "/guides/install", Content: "Add the package with your package manager."},
		{Title: "npm", Href: "/guides/install#npm", Content: "Run npm install."},
		{Title: "yarn", Href: "/guides/install#yarn", Content: ""},
		{Title: "Peer dependencies", Href: "/guides/install#peer-dependencies", Content: "None"},
	}, page.Sections)
}

func TestParseWithoutLeadingText(t *testing.T) {
	t.Parallel()

	page, err := search.Parse("T", "/t", `<h1>T</h1><h2 id="a">A</h2><p>x</p>`)
	require.NoError(t, err)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "A", page.Sections[0].Title)
}

func TestExtractGuidesOnly(t *testing.T) {
	t.Parallel()

	ex := &search.Extractor{Site: loadSite(t), Logger: logger.Discard()}
	pages, err := ex.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 4)

	var install search.PageData
	for _, p := range pages {
		if p.Href == "/guides/install" {
			install = p
		}
	}
	assert.Equal(t, "Installation", install.Title)
	require.Len(t, install.Sections, 4)
	assert.Equal(t, "/guides/install#peer-dependencies", install.Sections[3].Href)
	assert.Equal(t, "No peer dependencies are required.", install.Sections[3].Content)
}

func TestExtractWithReferences(t *testing.T) {
	t.Parallel()

	ex := &search.Extractor{
		Site:       loadSite(t),
		References: referenceService(t),
		Logger:     logger.Discard(),
	}
	pages, err := ex.Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 4+9)

	overview := pages[4]
	assert.Equal(t, "Storage", overview.Title)
	assert.Equal(t, "/references/storage", overview.Href)

	var found bool
	for _, p := range pages[4:] {
		if p.Href == "/references/storage/ThirdwebStorage" {
			found = true
			assert.Equal(t, "ThirdwebStorage", p.Title)
			assert.NotEmpty(t, p.Sections)
		}
	}
	assert.True(t, found)
}

func TestExtractReferenceFailureIsFatal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	ex := &search.Extractor{
		Site: loadSite(t),
		References: reference.NewService(
			[]config.ReferenceSource{{Slug: "storage", Name: "Storage", URL: srv.URL}},
			fetch.NewClient(),
			reference.WithLogger(logger.Discard()),
		),
		Logger: logger.Discard(),
	}
	_, err := ex.Extract(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".data", "search-content.json")
	pages := []search.PageData{{
		Title:    "Welcome",
		Href:     "/",
		Sections: []search.SectionData{{Title: "Quick start", Href: "/#quick-start", Content: "Install."}},
	}}
	require.NoError(t, search.WriteFile(path, pages))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"title\": \"Welcome\",\n"), string(data))

	var got []search.PageData
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, pages, got)
}

func TestWriteFileEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, search.WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
