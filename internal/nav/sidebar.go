package nav

import (
	"bytes"
	"html/template"
	"io"
	"strings"
)

// Sidebar is a named navigation tree.
type Sidebar struct {
	Name  string
	Links []Node
}

// RenderOptions carries the per-request rendering inputs.
type RenderOptions struct {
	// Route is the current page path, compared exactly against hrefs.
	Route string
	// OnLinkClick lists client-side actions dispatched, in order, when a
	// leaf link is selected.
	OnLinkClick []string
}

// ItemKind tells the renderer how to draw an Item.
type ItemKind int

const (
	// ItemLink is a leaf link.
	ItemLink ItemKind = iota
	// ItemHeading is a non-collapsible group: a static heading over its children.
	ItemHeading
	// ItemCollapsible is a group drawn as an expand/collapse control.
	ItemCollapsible
)

func (k ItemKind) String() string {
	switch k {
	case ItemLink:
		return "link"
	case ItemHeading:
		return "heading"
	case ItemCollapsible:
		return "collapsible"
	default:
		return "unknown"
	}
}

// Item is one rendered sidebar entry with every render decision resolved.
type Item struct {
	Kind ItemKind
	Name string
	Href string
	// Active is true when Href equals the current route.
	Active bool
	// Expanded is the initial expansion state. Always true for headings.
	Expanded bool
	Icon     *Icon
	Depth    int
	// Actions is the space-separated data-sidebar-actions value of a leaf.
	Actions  string
	Children []Item
}

func (i Item) IsLink() bool        { return i.Kind == ItemLink }
func (i Item) IsHeading() bool     { return i.Kind == ItemHeading }
func (i Item) IsCollapsible() bool { return i.Kind == ItemCollapsible }

// Build resolves the sidebar tree against opts.
func (s Sidebar) Build(opts RenderOptions) []Item {
	actions := strings.Join(opts.OnLinkClick, " ")
	return buildItems(s.Links, opts.Route, actions, 0)
}

func buildItems(nodes []Node, route, actions string, depth int) []Item {
	items := make([]Item, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, buildItem(n, route, actions, depth))
	}
	return items
}

func buildItem(n Node, route, actions string, depth int) Item {
	switch n := n.(type) {
	case *Group:
		item := Item{
			Name:     n.Name,
			Href:     n.Href,
			Active:   n.Href != "" && n.Href == route,
			Icon:     n.Icon,
			Depth:    depth,
			Children: buildItems(n.Links, route, actions, depth+1),
		}
		if n.IsCollapsible() {
			item.Kind = ItemCollapsible
			item.Expanded = n.Expanded || ContainsActive(n, route)
		} else {
			item.Kind = ItemHeading
			item.Expanded = true
		}
		return item
	default:
		return Item{
			Kind:    ItemLink,
			Name:    n.Label(),
			Href:    n.Link(),
			Active:  n.Link() == route,
			Depth:   depth,
			Actions: actions,
		}
	}
}

type sidebarView struct {
	Name  string
	Items []Item
}

// Render writes the desktop sidebar HTML.
func (s Sidebar) Render(w io.Writer, opts RenderOptions) error {
	return templates.ExecuteTemplate(w, "sidebar", sidebarView{
		Name:  s.Name,
		Items: s.Build(opts),
	})
}

// HTML renders the desktop sidebar for embedding in a page template.
func (s Sidebar) HTML(opts RenderOptions) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf, opts); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
