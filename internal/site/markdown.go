package site

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// relPathKey carries the content-relative path of the page being converted.
var relPathKey = parser.NewContextKey()

// Markdown converts page sources to HTML.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a renderer with GFM, syntax highlighting and
// automatic heading IDs enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(util.Prioritized(linkResolver{}, 100)),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts Markdown source to an HTML fragment. Links to other .md
// files are resolved against relPath, the page's path inside the content
// directory, and replaced by the target page's route. relPath may be empty
// for generated Markdown, which resolves links from the content root.
func (m *Markdown) Render(src []byte, relPath string) (template.HTML, error) {
	pc := parser.NewContext()
	pc.Set(relPathKey, relPath)

	var buf bytes.Buffer
	if err := m.md.Convert(src, &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// linkResolver rewrites the destination of every link node with resolveLink.
type linkResolver struct{}

func (linkResolver) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	relPath, _ := pc.Get(relPathKey).(string)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := n.(*ast.Link); ok && entering {
			link.Destination = []byte(resolveLink(relPath, string(link.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// resolveLink maps a link to a .md file onto the absolute route of that page.
// Destinations with a scheme or host, and links to anything other than a .md
// file, are returned unchanged.
func resolveLink(relPath, dest string) string {
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasSuffix(u.Path, ".md") {
		return dest
	}

	target := u.Path
	if !strings.HasPrefix(target, "/") {
		target = path.Join(path.Dir(relPath), target)
	}
	route := RouteFor(strings.TrimPrefix(path.Clean("/"+target), "/"))
	if u.RawQuery != "" {
		route += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		route += "#" + u.EscapedFragment()
	}
	return route
}

// extractTitle pulls the first # heading from markdown content, or falls back
// to a display name formatted from the file name.
func extractTitle(content, relPath string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	name := strings.TrimSuffix(path.Base(relPath), ".md")
	if name == "index" {
		if dir := path.Dir(relPath); dir != "." {
			name = path.Base(dir)
		} else {
			return "Home"
		}
	}
	return formatDirName(name)
}
