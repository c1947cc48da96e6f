package nav_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsite/internal/nav"
)

func TestMobileOptions(t *testing.T) {
	t.Parallel()

	opts := nav.MobileOptions(nav.RenderOptions{Route: "/b", OnLinkClick: []string{"track", nav.CloseOverlayAction}})
	assert.Equal(t, "/b", opts.Route)
	assert.Equal(t, []string{nav.CloseOverlayAction, "track"}, opts.OnLinkClick)
}

func collectLeaves(items []nav.Item, out *[]nav.Item) {
	for _, item := range items {
		if item.IsLink() {
			*out = append(*out, item)
		}
		collectLeaves(item.Children, out)
	}
}

func TestMobileLeavesCloseOverlayOnce(t *testing.T) {
	t.Parallel()

	s := exampleSidebar()
	items := s.Build(nav.MobileOptions(nav.RenderOptions{OnLinkClick: []string{nav.CloseOverlayAction}}))

	var leaves []nav.Item
	collectLeaves(items, &leaves)
	require.Len(t, leaves, 2)
	for _, leaf := range leaves {
		assert.Equal(t, 1, strings.Count(leaf.Actions, nav.CloseOverlayAction), "leaf %s", leaf.Name)
	}
}

func TestRenderMobile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, exampleSidebar().RenderMobile(&buf, nav.RenderOptions{Route: "/b", OnLinkClick: []string{"track"}}))
	html := buf.String()

	assert.Contains(t, html, `data-sidebar-toggle`)
	assert.Contains(t, html, `<span>Storage</span>`, "trigger shows the sidebar name")
	assert.Contains(t, html, `id="sidebar-overlay" hidden`, "overlay starts closed")
	assert.Equal(t, 2, strings.Count(html, `data-sidebar-actions="close-sidebar-overlay track"`))
	assert.Contains(t, html, `<a href="/b" class="sidebar-link active"`)
}
