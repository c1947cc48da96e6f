package nav

import (
	"bytes"
	"html/template"
	"io"
)

// CloseOverlayAction is the client-side action that closes the mobile
// sidebar overlay and restores page scrolling.
const CloseOverlayAction = "close-sidebar-overlay"

type mobileView struct {
	ID      string
	Name    string
	Sidebar sidebarView
}

// MobileOptions returns opts with the overlay close action placed first
// among the leaf click actions. A caller-supplied close action is dropped
// so selection closes the overlay exactly once.
func MobileOptions(opts RenderOptions) RenderOptions {
	actions := make([]string, 0, len(opts.OnLinkClick)+1)
	actions = append(actions, CloseOverlayAction)
	for _, a := range opts.OnLinkClick {
		if a != CloseOverlayAction {
			actions = append(actions, a)
		}
	}
	return RenderOptions{Route: opts.Route, OnLinkClick: actions}
}

// RenderMobile writes the mobile variant: a trigger button labelled with the
// sidebar name over a dismissible overlay holding the sidebar.
func (s Sidebar) RenderMobile(w io.Writer, opts RenderOptions) error {
	return templates.ExecuteTemplate(w, "mobile", mobileView{
		ID:   "sidebar-overlay",
		Name: s.Name,
		Sidebar: sidebarView{
			Name:  s.Name,
			Items: s.Build(MobileOptions(opts)),
		},
	})
}

// MobileHTML renders the mobile variant for embedding in a page template.
func (s Sidebar) MobileHTML(opts RenderOptions) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.RenderMobile(&buf, opts); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
