// Package search extracts the searchable text of every site page into the
// static index consumed by the client-side search box.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/docsite/internal/reference"
	"github.com/ziadkadry99/docsite/internal/site"
)

// SectionData is the text under one heading of a page.
type SectionData struct {
	Title   string `json:"title"`
	Href    string `json:"href"`
	Content string `json:"content"`
}

// PageData is one page of the index.
type PageData struct {
	Title    string        `json:"title"`
	Href     string        `json:"href"`
	Sections []SectionData `json:"sections"`
}

// Extractor collects index entries from guide pages and reference sources.
type Extractor struct {
	Site       *site.Site
	References *reference.Service // Optional.
	Logger     *slog.Logger       // Optional.
}

// Extract renders every page and splits it into sections. Pages come back
// guides first, in content order, then each reference source in
// configuration order. Any failure aborts the extraction.
func (e *Extractor) Extract(ctx context.Context) ([]PageData, error) {
	log := e.Logger
	if log == nil {
		log = slog.Default()
	}

	var pages []PageData
	for _, p := range e.Site.Content.Pages() {
		body, err := e.Site.Body(p)
		if err != nil {
			return nil, err
		}
		page, err := Parse(p.Title, p.Route, string(body))
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", p.RelPath, err)
		}
		pages = append(pages, page)
	}
	log.Debug("extracted guide pages", "pages", len(pages))

	if e.References == nil {
		return pages, nil
	}
	for _, src := range e.References.Sources() {
		refPages, err := e.References.Pages(ctx, src.Slug)
		if err != nil {
			return nil, err
		}
		for _, rp := range refPages {
			body, err := e.Site.Markdown.Render(rp.Markdown, "")
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", rp.Route, err)
			}
			page, err := Parse(rp.Title, rp.Route, string(body))
			if err != nil {
				return nil, fmt.Errorf("extracting %s: %w", rp.Route, err)
			}
			pages = append(pages, page)
		}
		log.Debug("extracted reference pages", "source", src.Slug, "pages", len(refPages))
	}
	return pages, nil
}

// Parse splits a rendered page body into sections: one per h2 or h3, plus an
// untitled leading section for text before the first of them. The h1 is the
// page title and is not repeated in any section.
func Parse(title, href, body string) (PageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return PageData{}, fmt.Errorf("parsing HTML: %w", err)
	}

	page := PageData{Title: title, Href: href, Sections: []SectionData{}}
	current := SectionData{Href: href}
	var text []string

	flush := func() {
		current.Content = strings.Join(text, " ")
		if current.Title != "" || current.Content != "" {
			page.Sections = append(page.Sections, current)
		}
		text = nil
	}

	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h1":
			return
		case "h2", "h3":
			flush()
			current = SectionData{Title: collapse(sel.Text()), Href: href}
			if id, ok := sel.Attr("id"); ok && id != "" {
				current.Href = href + "#" + id
			}
		default:
			if t := collapse(sel.Text()); t != "" {
				text = append(text, t)
			}
		}
	})
	flush()
	return page, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WriteFile writes pages to path as 2-space indented JSON, creating parent
// directories as needed.
func WriteFile(path string, pages []PageData) error {
	if pages == nil {
		pages = []PageData{}
	}
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling search index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing search index: %w", err)
	}
	return nil
}
