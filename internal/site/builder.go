package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/docsite/internal/progress"
)

// DefaultConcurrency bounds the number of pages rendered at once.
const DefaultConcurrency = 8

// Builder renders a Site to a static directory.
type Builder struct {
	Site        *Site
	OutputDir   string
	Reporter    progress.Reporter // Optional.
	Concurrency int
}

// Build writes every page to <OutputDir>/<route>/index.html plus the shared
// assets and returns the number of pages written.
func (b *Builder) Build(ctx context.Context) (int, error) {
	pages := b.Site.Content.Pages()
	if len(pages) == 0 {
		return 0, fmt.Errorf("no markdown files found in %s", b.Site.Content.Dir)
	}

	if err := b.writeAssets(); err != nil {
		return 0, err
	}

	reporter := b.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(pages))
	defer reporter.Finish()

	limit := b.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var done atomic.Int64
	for _, p := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.writePage(p); err != nil {
				return err
			}
			reporter.Update(int(done.Add(1)), p.RelPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(pages), nil
}

func (b *Builder) writeAssets() error {
	dir := filepath.Join(b.OutputDir, "assets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating assets dir: %w", err)
	}
	for name, a := range Assets {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(a.Body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

func (b *Builder) writePage(p *Page) error {
	var buf bytes.Buffer
	if err := b.Site.render(&buf, p); err != nil {
		return err
	}

	outPath := PagePath(b.OutputDir, p.Route)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// PagePath returns the index.html file a route is written to beneath dir.
func PagePath(dir, route string) string {
	rel := strings.Trim(route, "/")
	return filepath.Join(dir, filepath.FromSlash(rel), "index.html")
}
