// Package site turns a directory of Markdown pages into the documentation
// website: routing, navigation, rendering and static output.
package site

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/docsite/internal/nav"
)

// Options configures a Site.
type Options struct {
	Name           string
	ContentDir     string
	NavigationFile string // Authored navigation; empty generates it from the content tree.
	Include        []string
	Exclude        []string
}

// Site is the loaded guide content together with its navigation and renderers.
type Site struct {
	Name     string
	Content  *Content
	Links    []nav.Node
	Markdown *Markdown
	Layout   *Layout
}

// New loads the content directory and navigation described by opts.
func New(opts Options) (*Site, error) {
	content, err := LoadContent(ContentOptions{
		Dir:     opts.ContentDir,
		Include: opts.Include,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return nil, err
	}
	links, err := NavigationFor(content, opts.NavigationFile)
	if err != nil {
		return nil, fmt.Errorf("loading navigation: %w", err)
	}
	layout, err := NewLayout(opts.Name)
	if err != nil {
		return nil, err
	}
	return &Site{
		Name:     opts.Name,
		Content:  content,
		Links:    links,
		Markdown: NewMarkdown(),
		Layout:   layout,
	}, nil
}

// Sidebar returns the navigation of the guide pages.
func (s *Site) Sidebar() *nav.Sidebar {
	return &nav.Sidebar{Name: s.Name, Links: s.Links}
}

// Body renders a page's Markdown to an HTML fragment.
func (s *Site) Body(p *Page) (template.HTML, error) {
	body, err := s.Markdown.Render(p.Source, p.RelPath)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", p.RelPath, err)
	}
	return body, nil
}

// RenderPage writes the full document for the page at route. It returns an
// error wrapping ErrNotFound when no page exists.
func (s *Site) RenderPage(w io.Writer, route string) error {
	p, err := s.Content.Lookup(route)
	if err != nil {
		return err
	}
	return s.render(w, p)
}

func (s *Site) render(w io.Writer, p *Page) error {
	body, err := s.Body(p)
	if err != nil {
		return err
	}
	return s.Layout.Render(w, View{
		Title:   p.Title,
		Route:   p.Route,
		Sidebar: s.Sidebar(),
		Content: body,
	})
}

// RenderMarkdown writes a full document for generated Markdown, such as a
// reference page, under the given sidebar.
func (s *Site) RenderMarkdown(w io.Writer, title, route string, sidebar *nav.Sidebar, src []byte) error {
	body, err := s.Markdown.Render(src, "")
	if err != nil {
		return fmt.Errorf("rendering %s: %w", route, err)
	}
	return s.Layout.Render(w, View{Title: title, Route: route, Sidebar: sidebar, Content: body})
}

// RenderNotFound writes the 404 page.
func (s *Site) RenderNotFound(w io.Writer, route string) error {
	body := template.HTML(`<h1>Page not found</h1><p>No page exists at <code>` +
		template.HTMLEscapeString(route) + `</code>. <a href="/">Return home</a>.</p>`)
	return s.Layout.Render(w, View{Title: "Not found", Route: route, Sidebar: s.Sidebar(), Content: body})
}
