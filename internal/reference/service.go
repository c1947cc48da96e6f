// Package reference serves API reference pages generated from remote TypeDoc
// documentation, caching each source for the revalidation window.
package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ziadkadry99/docsite/internal/cache"
	"github.com/ziadkadry99/docsite/internal/config"
	"github.com/ziadkadry99/docsite/internal/nav"
	"github.com/ziadkadry99/docsite/internal/typedoc"
)

var (
	// ErrUnknownSource is returned for a slug with no configured source.
	ErrUnknownSource = errors.New("unknown reference source")
	// ErrUnknownEntry is returned for a name the source does not document.
	ErrUnknownEntry = errors.New("unknown reference entry")
)

// Fetcher retrieves and decodes a JSON document.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string, v any) error
}

// Page is one generated reference page.
type Page struct {
	Title    string
	Route    string
	Markdown []byte
}

// Service holds one revalidating cache per reference source.
type Service struct {
	sources  []config.ReferenceSource
	caches   map[string]*cache.Revalidating[*typedoc.Doc]
	fetcher  Fetcher
	logger   *slog.Logger
	window   time.Duration
	now      func() time.Time
	observer func(source string, hit bool)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for fetch events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithWindow sets how long a fetched document is served before refetching.
func WithWindow(d time.Duration) Option {
	return func(s *Service) { s.window = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithObserver is called with the source slug on every cache lookup.
func WithObserver(o func(source string, hit bool)) Option {
	return func(s *Service) { s.observer = o }
}

// NewService builds a Service for sources. Slugs are assumed unique, as
// checked by config.Validate.
func NewService(sources []config.ReferenceSource, fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		sources: sources,
		caches:  make(map[string]*cache.Revalidating[*typedoc.Doc], len(sources)),
		fetcher: fetcher,
		logger:  slog.Default(),
		window:  cache.DefaultWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, src := range sources {
		cacheOpts := []cache.Option[*typedoc.Doc]{cache.WithClock[*typedoc.Doc](s.now)}
		if s.observer != nil {
			slug := src.Slug
			cacheOpts = append(cacheOpts, cache.WithObserver[*typedoc.Doc](func(hit bool) {
				s.observer(slug, hit)
			}))
		}
		s.caches[src.Slug] = cache.New(s.window, s.loader(src), cacheOpts...)
	}
	return s
}

func (s *Service) loader(src config.ReferenceSource) cache.LoadFunc[*typedoc.Doc] {
	return func(ctx context.Context) (*typedoc.Doc, error) {
		start := s.now()
		var project typedoc.Reflection
		if err := s.fetcher.FetchJSON(ctx, src.URL, &project); err != nil {
			s.logger.Error("reference fetch failed", "source", src.Slug, "url", src.URL, "error", err)
			return nil, fmt.Errorf("fetching %s reference: %w", src.Slug, err)
		}
		doc := typedoc.Transform(&project)
		s.logger.Info("reference fetched",
			"source", src.Slug,
			"entries", doc.Len(),
			"duration", s.now().Sub(start).String())
		return doc, nil
	}
}

// Sources returns the configured sources in configuration order.
func (s *Service) Sources() []config.ReferenceSource {
	return s.sources
}

// Source returns the source registered under slug.
func (s *Service) Source(slug string) (config.ReferenceSource, error) {
	for _, src := range s.sources {
		if src.Slug == slug {
			return src, nil
		}
	}
	return config.ReferenceSource{}, fmt.Errorf("%q: %w", slug, ErrUnknownSource)
}

// Base returns the route prefix of a source's pages.
func Base(slug string) string {
	return "/references/" + slug
}

// Doc returns the transformed documentation of slug, fetching it when the
// cached copy is missing or older than the window.
func (s *Service) Doc(ctx context.Context, slug string) (*typedoc.Doc, error) {
	c, ok := s.caches[slug]
	if !ok {
		return nil, fmt.Errorf("%q: %w", slug, ErrUnknownSource)
	}
	return c.Get(ctx)
}

// Sidebar returns the navigation of slug's reference section.
func (s *Service) Sidebar(ctx context.Context, slug string) (*nav.Sidebar, error) {
	src, err := s.Source(slug)
	if err != nil {
		return nil, err
	}
	doc, err := s.Doc(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &nav.Sidebar{Name: src.Name, Links: doc.Links(Base(slug))}, nil
}

// Page returns the overview page of slug when name is empty, otherwise the
// page of the named entry.
func (s *Service) Page(ctx context.Context, slug, name string) (Page, error) {
	src, err := s.Source(slug)
	if err != nil {
		return Page{}, err
	}
	doc, err := s.Doc(ctx, slug)
	if err != nil {
		return Page{}, err
	}
	if name == "" {
		return overview(src, doc), nil
	}
	e, ok := doc.Find(name)
	if !ok {
		return Page{}, fmt.Errorf("%s/%s: %w", slug, name, ErrUnknownEntry)
	}
	return entryPage(slug, e), nil
}

// Pages returns every page of slug: the overview followed by one page per
// entry in category order.
func (s *Service) Pages(ctx context.Context, slug string) ([]Page, error) {
	src, err := s.Source(slug)
	if err != nil {
		return nil, err
	}
	doc, err := s.Doc(ctx, slug)
	if err != nil {
		return nil, err
	}
	pages := make([]Page, 0, doc.Len()+1)
	pages = append(pages, overview(src, doc))
	for _, c := range typedoc.Categories {
		for _, e := range doc.Entries(c) {
			pages = append(pages, entryPage(slug, e))
		}
	}
	return pages, nil
}

func overview(src config.ReferenceSource, doc *typedoc.Doc) Page {
	base := Base(src.Slug)
	return Page{
		Title:    src.Name,
		Route:    base,
		Markdown: []byte(doc.OverviewMarkdown(src.Name, base)),
	}
}

func entryPage(slug string, e typedoc.Entry) Page {
	return Page{
		Title:    e.Name,
		Route:    typedoc.EntryHref(Base(slug), e.Name),
		Markdown: []byte(e.Markdown()),
	}
}
