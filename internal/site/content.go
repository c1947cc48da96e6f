package site

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/ziadkadry99/docsite/internal/walker"
)

// ErrNotFound is returned when no page exists for a route.
var ErrNotFound = errors.New("page not found")

// Page is one authored Markdown page.
type Page struct {
	RelPath string // Slash-separated path relative to the content directory.
	Route   string // URL path the page is served at.
	Title   string
	Source  []byte
}

// Content is the set of pages found in a content directory, indexed by route.
type Content struct {
	Dir     string
	pages   []*Page
	byRoute map[string]*Page
}

// ContentOptions selects which files of Dir are pages.
type ContentOptions struct {
	Dir     string
	Include []string
	Exclude []string
}

// LoadContent walks opts.Dir and reads every matching page.
func LoadContent(opts ContentOptions) (*Content, error) {
	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: opts.Dir,
		Include: opts.Include,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	c := &Content{Dir: opts.Dir, byRoute: make(map[string]*Page, len(files))}
	for _, f := range files {
		if !strings.HasSuffix(f.RelPath, ".md") {
			continue
		}
		src, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}
		p := &Page{
			RelPath: f.RelPath,
			Route:   RouteFor(f.RelPath),
			Title:   extractTitle(string(src), f.RelPath),
			Source:  src,
		}
		if prev, ok := c.byRoute[p.Route]; ok {
			return nil, fmt.Errorf("pages %s and %s both map to route %s", prev.RelPath, p.RelPath, p.Route)
		}
		c.byRoute[p.Route] = p
		c.pages = append(c.pages, p)
	}
	return c, nil
}

// RouteFor maps a content path to its route: "guides/install.md" is served at
// "/guides/install" and "guides/index.md" at "/guides".
func RouteFor(relPath string) string {
	p := strings.TrimSuffix(relPath, ".md")
	if p == "index" {
		return "/"
	}
	p = strings.TrimSuffix(p, "/index")
	return "/" + p
}

// NormalizeRoute cleans a request path so it compares equal to page routes.
func NormalizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return path.Clean("/" + route)
}

// Pages returns all pages sorted by relative path.
func (c *Content) Pages() []*Page {
	return c.pages
}

// Lookup returns the page served at route.
func (c *Content) Lookup(route string) (*Page, error) {
	p, ok := c.byRoute[NormalizeRoute(route)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", route, ErrNotFound)
	}
	return p, nil
}

// Len returns the number of pages.
func (c *Content) Len() int { return len(c.pages) }
