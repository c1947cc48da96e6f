// Package server exposes the documentation site over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docsite/internal/metrics"
	"github.com/ziadkadry99/docsite/internal/reference"
	"github.com/ziadkadry99/docsite/internal/site"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// serve context is canceled.
const ShutdownTimeout = 10 * time.Second

// Config holds server configuration.
type Config struct {
	Port        int
	SearchIndex string // Path of the extracted search index served at /search-content.json.
	AllowAll    bool   // Allow all CORS origins (dev mode).
}

// Server serves guide pages, reference pages and the search index.
type Server struct {
	cfg        Config
	site       *site.Site
	refs       *reference.Service
	metrics    *metrics.Metrics
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. refs may be nil when no reference sources are configured.
func New(cfg Config, s *site.Site, refs *reference.Service, m *metrics.Metrics, logger *slog.Logger) *Server {
	srv := &Server{
		cfg:     cfg,
		site:    s,
		refs:    refs,
		metrics: m,
		logger:  logger,
	}
	srv.router = srv.buildRouter()
	return srv
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/assets/{file}", s.handleAsset)
	r.Get("/search-content.json", s.handleSearchIndex)
	r.Get("/references/{slug}", s.handleReference)
	r.Get("/references/{slug}/{name}", s.handleReference)
	r.Get("/*", s.handlePage)

	return r
}

// Handler returns the root HTTP handler. Responses are gzip-compressed for
// clients that accept it.
func (s *Server) Handler() http.Handler {
	return gziphandler.GzipHandler(s.router)
}

// logRequests logs every request and counts it by route pattern and status.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.metrics.Requests.Increment(route, strconv.Itoa(status))
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	a, ok := site.Assets[chi.URLParam(r, "file")]
	if !ok {
		s.notFound(w, r)
		return
	}
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write([]byte(a.Body))
}

func (s *Server) handleSearchIndex(w http.ResponseWriter, r *http.Request) {
	if s.cfg.SearchIndex == "" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(s.cfg.SearchIndex); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("search index unavailable", "path", s.cfg.SearchIndex, "error", err)
		}
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.cfg.SearchIndex)
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	if s.refs == nil {
		s.notFound(w, r)
		return
	}
	slug := chi.URLParam(r, "slug")
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		s.notFound(w, r)
		return
	}

	page, err := s.refs.Page(r.Context(), slug, name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sidebar, err := s.refs.Sidebar(r.Context(), slug)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.site.RenderMarkdown(&buf, page.Title, page.Route, sidebar, page.Markdown); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.site.RenderPage(&buf, r.URL.Path); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// fail answers 404 for missing pages and 500 for everything else.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, site.ErrNotFound) ||
		errors.Is(err, reference.ErrUnknownSource) ||
		errors.Is(err, reference.ErrUnknownEntry) {
		s.notFound(w, r)
		return
	}
	s.logger.Error("render failed",
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.site.RenderNotFound(&buf, r.URL.Path); err != nil {
		s.logger.Error("render 404 page", "error", err)
		http.NotFound(w, r)
		return
	}
	writeHTML(w, http.StatusNotFound, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Run listens on the configured port until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("docsite server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
