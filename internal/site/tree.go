package site

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/docsite/internal/nav"
)

// FileTree represents a node in the content directory tree.
type FileTree struct {
	Name     string
	Title    string // Display name: the page title for files, formatted name for dirs.
	Path     string // For files: full relative path. For dirs: directory path (e.g., "guides/advanced").
	IsDir    bool
	Index    *Page // For dirs: the directory's index.md page, if any.
	Page     *Page // For files: the page itself.
	Children []*FileTree
}

// BuildTree arranges pages into a tree mirroring their directories.
func BuildTree(pages []*Page) *FileTree {
	root := &FileTree{Name: "", IsDir: true}

	for _, p := range pages {
		parts := strings.Split(p.RelPath, "/")
		current := root
		for i, part := range parts[:len(parts)-1] {
			current = current.childDir(part, strings.Join(parts[:i+1], "/"))
		}

		if parts[len(parts)-1] == "index.md" && current != root {
			current.Index = p
			current.Title = p.Title
			continue
		}
		current.Children = append(current.Children, &FileTree{
			Name:  parts[len(parts)-1],
			Title: p.Title,
			Path:  p.RelPath,
			Page:  p,
		})
	}

	sortTree(root)
	return root
}

func (t *FileTree) childDir(name, dirPath string) *FileTree {
	for _, child := range t.Children {
		if child.IsDir && child.Name == name {
			return child
		}
	}
	node := &FileTree{Name: name, Title: formatDirName(name), Path: dirPath, IsDir: true}
	t.Children = append(t.Children, node)
	return node
}

// sortTree recursively sorts tree children: the root index first, then
// directories, then files, alphabetically.
func sortTree(node *FileTree) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if ai, bi := a.Path == "index.md", b.Path == "index.md"; ai != bi {
			return ai
		}
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

// Links converts the tree into sidebar links. Directories become collapsible
// groups linked to their index page when one exists.
func (t *FileTree) Links() []nav.Node {
	links := make([]nav.Node, 0, len(t.Children))
	for _, child := range t.Children {
		if !child.IsDir {
			links = append(links, &nav.Leaf{Name: child.Title, Href: child.Page.Route})
			continue
		}
		g := &nav.Group{Name: child.Title, Links: child.Links()}
		if child.Index != nil {
			g.Href = child.Index.Route
		}
		links = append(links, g)
	}
	return links
}

// NavigationFor returns the sidebar links for content: the authored
// navigation file when navFile is set, otherwise links generated from the
// directory tree.
func NavigationFor(content *Content, navFile string) ([]nav.Node, error) {
	if navFile != "" {
		return nav.LoadFile(navFile)
	}
	return BuildTree(content.Pages()).Links(), nil
}

// formatDirName converts a directory or file slug to a human-readable name.
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
