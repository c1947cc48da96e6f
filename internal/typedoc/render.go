package typedoc

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ziadkadry99/docsite/internal/nav"
)

// EntryHref returns the route of an entry beneath base.
func EntryHref(base, name string) string {
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(name)
}

// Links builds the reference sidebar: an overview link followed by one
// collapsible group per non-empty category.
func (d *Doc) Links(base string) []nav.Node {
	links := []nav.Node{&nav.Leaf{Name: "Overview", Href: base}}
	for _, c := range Categories {
		entries := d.Entries(c)
		if len(entries) == 0 {
			continue
		}
		group := &nav.Group{Name: string(c), Links: make([]nav.Node, 0, len(entries))}
		for _, e := range entries {
			group.Links = append(group.Links, &nav.Leaf{Name: e.Name, Href: EntryHref(base, e.Name)})
		}
		links = append(links, group)
	}
	return links
}

// OverviewMarkdown renders the landing page of a reference section.
func (d *Doc) OverviewMarkdown(title, base string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if d.Name != "" && d.Name != title {
		fmt.Fprintf(&b, "Reference documentation for `%s`.\n\n", d.Name)
	}
	for _, c := range Categories {
		entries := d.Entries(c)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", c)
		for _, e := range entries {
			fmt.Fprintf(&b, "- [%s](%s)", e.Name, EntryHref(base, e.Name))
			if first := firstLine(e.Summary); first != "" {
				fmt.Fprintf(&b, " - %s", first)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders the page of a single entry.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	writeBody(&b, e, "##")

	if len(e.Members) > 0 {
		b.WriteString("## Members\n\n")
		for _, m := range e.Members {
			fmt.Fprintf(&b, "### %s\n\n", m.Name)
			writeBody(&b, m, "####")
		}
	}
	return b.String()
}

func writeBody(b *strings.Builder, e Entry, heading string) {
	if e.Summary != "" {
		b.WriteString(e.Summary + "\n\n")
	}
	if len(e.Signatures) > 0 {
		b.WriteString("```ts\n")
		b.WriteString(strings.Join(e.Signatures, "\n"))
		b.WriteString("\n```\n\n")
	}
	if len(e.Parameters) > 0 {
		fmt.Fprintf(b, "%s Parameters\n\n", heading)
		for _, p := range e.Parameters {
			name := p.Name
			if p.Optional {
				name += " (optional)"
			}
			fmt.Fprintf(b, "- `%s`: `%s`", name, p.Type)
			if p.Summary != "" {
				fmt.Fprintf(b, " - %s", firstLine(p.Summary))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if e.Returns != "" {
		fmt.Fprintf(b, "%s Returns\n\n%s\n\n", heading, e.Returns)
	}
	for _, ex := range e.Examples {
		fmt.Fprintf(b, "%s Example\n\n%s\n\n", heading, ex)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
