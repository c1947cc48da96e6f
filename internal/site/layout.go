package site

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/docsite/internal/nav"
)

// Asset is a static file served under /assets/.
type Asset struct {
	ContentType string
	Body        string
}

// Assets are the static files every page references, keyed by file name.
var Assets = map[string]Asset{
	"style.css": {ContentType: "text/css; charset=utf-8", Body: cssContent},
	"script.js": {ContentType: "text/javascript; charset=utf-8", Body: jsContent},
}

// View is everything the layout needs to draw one page.
type View struct {
	Title   string
	Route   string
	Sidebar *nav.Sidebar // nil for pages without navigation, such as errors.
	Content template.HTML
}

type layoutData struct {
	Title       string
	SiteName    string
	SidebarName string
	Sidebar     template.HTML
	Mobile      template.HTML
	Content     template.HTML
}

// Layout wraps rendered page bodies in the site chrome.
type Layout struct {
	siteName string
	tmpl     *template.Template
}

// NewLayout parses the page template.
func NewLayout(siteName string) (*Layout, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Layout{siteName: siteName, tmpl: tmpl}, nil
}

// Render writes a full HTML document for v.
func (l *Layout) Render(w io.Writer, v View) error {
	data := layoutData{
		Title:    v.Title,
		SiteName: l.siteName,
		Content:  v.Content,
	}
	if v.Sidebar != nil {
		opts := nav.RenderOptions{Route: v.Route}
		desktop, err := v.Sidebar.HTML(opts)
		if err != nil {
			return fmt.Errorf("rendering sidebar: %w", err)
		}
		mobile, err := v.Sidebar.MobileHTML(opts)
		if err != nil {
			return fmt.Errorf("rendering mobile sidebar: %w", err)
		}
		data.SidebarName = v.Sidebar.Name
		data.Sidebar = desktop
		data.Mobile = mobile
	}
	return l.tmpl.Execute(w, data)
}
