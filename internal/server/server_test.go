package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/config"
	"github.com/ziadkadry99/docsite/internal/fetch"
	"github.com/ziadkadry99/docsite/internal/logger"
	"github.com/ziadkadry99/docsite/internal/metrics"
	"github.com/ziadkadry99/docsite/internal/reference"
	"github.com/ziadkadry99/docsite/internal/site"
)

func testSite(t *testing.T) *site.Site {
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

// upstream serves the gzipped TypeDoc fixture at /docs.json.gz.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "typedoc", "testdata", "storage.json"))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs.json.gz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, cfg Config) (*Server, *metrics.Metrics) {
	t.Helper()
	up := upstream(t)
	refs := reference.NewService([]config.ReferenceSource{
		{Slug: "storage", Name: "Storage", URL: up.URL + "/docs.json.gz"},
		{Slug: "broken", Name: "Broken", URL: up.URL + "/missing.json.gz"},
	}, fetch.NewClient(), reference.WithLogger(logger.Discard()))

	m := metrics.New()
	return New(cfg, testSite(t), refs, m, logger.Discard()), m
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Config{AllowAll: true})

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestContentPage(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/guides/install")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `<h2 id="npm">npm</h2>`)
	assert.Contains(t, w.Body.String(), `class="sidebar-link active">Installation</a>`)

	w = get(t, srv, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Welcome | Storage</title>")
}

func TestNotFoundPage(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/does/not/exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestAssets(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/assets/style.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))

	w = get(t, srv, "/assets/script.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "close-sidebar-overlay")
	assert.Contains(t, w.Body.String(), `document.body.style.overflow = open ? "hidden" : "auto"`)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/assets/missing.css").Code)
}

func TestGzipResponses(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/assets/style.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	css, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(css), ".sidebar-mobile-panel")
}

func TestSearchIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-content.json")
	srv, _ := newTestServer(t, Config{SearchIndex: path})

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/search-content.json").Code)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	w := get(t, srv, "/search-content.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "[]", w.Body.String())
}

func TestReferencePages(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/references/storage")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Storage | Storage</title>")
	assert.Contains(t, w.Body.String(), `href="/references/storage/ThirdwebStorage"`)

	w = get(t, srv, "/references/storage/ThirdwebStorage")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<h1 id="thirdwebstorage">ThirdwebStorage</h1>`)
	assert.Contains(t, body, `<a href="/references/storage/ThirdwebStorage" class="sidebar-link active">ThirdwebStorage</a>`)
	assert.Contains(t, body, `<details class="sidebar-group collapsible" data-depth="0" open>`)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/references/storage/Missing").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/references/unknown").Code)
}

func TestReferenceFetchFailure(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	w := get(t, srv, "/references/broken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	get(t, srv, "/healthz")
	get(t, srv, "/nope")

	w := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `docsite_http_requests_total{code="200",route="/healthz"} 1`)
	assert.Contains(t, w.Body.String(), `docsite_http_requests_total{code="404",route="/*"} 1`)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	addr := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		resp, err := http.Get(addr)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == `{"status":"ok"}`
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
