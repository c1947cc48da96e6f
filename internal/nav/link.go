// Package nav models the documentation sidebar: a tree of links and groups,
// the active-route detector, and the desktop and mobile sidebar renderers.
package nav

import (
	"fmt"
	"html/template"
	"os"

	"gopkg.in/yaml.v3"
)

// Node is a sidebar entry, either a *Leaf or a *Group.
type Node interface {
	// Label is the text shown for the node.
	Label() string
	// Link is the node's href, empty when the node is not clickable.
	Link() string

	isNode()
}

// Leaf is a terminal link.
type Leaf struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

func (l *Leaf) Label() string { return l.Name }
func (l *Leaf) Link() string  { return l.Href }
func (*Leaf) isNode()         {}

// Group is a named, ordered collection of child nodes. A group is itself a
// link when Href is set.
type Group struct {
	Name  string
	Href  string
	Links []Node
	// Collapsible reports whether the group renders as an expand/collapse
	// control. Nil means true.
	Collapsible *bool
	// Expanded opens a collapsible group on first render.
	Expanded bool
	Icon     *Icon
}

func (g *Group) Label() string { return g.Name }
func (g *Group) Link() string  { return g.Href }
func (*Group) isNode()         {}

// IsCollapsible reports whether the group renders as an expand/collapse control.
func (g *Group) IsCollapsible() bool {
	return g.Collapsible == nil || *g.Collapsible
}

// Icon decorates a group heading. Src is an image reference rendered as
// <img>; Markup is a trusted inline element (usually SVG) rendered as-is.
type Icon struct {
	Src    string        `yaml:"src,omitempty" json:"src,omitempty"`
	Alt    string        `yaml:"alt,omitempty" json:"alt,omitempty"`
	Markup template.HTML `yaml:"svg,omitempty" json:"svg,omitempty"`
}

// IsImage reports whether the icon is an image reference.
func (i *Icon) IsImage() bool { return i != nil && i.Src != "" }

// Bool returns a pointer to b, for Group.Collapsible literals.
func Bool(b bool) *bool { return &b }

// Links is an ordered list of nodes decodable from YAML. A mapping with a
// "links" key decodes as a *Group, anything else as a *Leaf.
type Links []Node

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Links) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*l = Links{}
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: links must be a sequence", value.Line)
	}
	out := make(Links, 0, len(value.Content))
	for _, item := range value.Content {
		n, err := decodeNode(item)
		if err != nil {
			return err
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

type rawNode struct {
	Name        string `yaml:"name"`
	Href        string `yaml:"href"`
	Links       Links  `yaml:"links"`
	Expanded    bool   `yaml:"expanded"`
	Collapsible *bool  `yaml:"collapsible"`
	Icon        *Icon  `yaml:"icon"`
}

func decodeNode(item *yaml.Node) (Node, error) {
	if item.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: navigation entry must be a mapping", item.Line)
	}
	var raw rawNode
	if err := item.Decode(&raw); err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("line %d: navigation entry is missing a name", item.Line)
	}

	if !hasKey(item, "links") {
		if raw.Href == "" {
			return nil, fmt.Errorf("line %d: link %q is missing an href", item.Line, raw.Name)
		}
		return &Leaf{Name: raw.Name, Href: raw.Href}, nil
	}

	links := raw.Links
	if links == nil {
		links = Links{}
	}
	return &Group{
		Name:        raw.Name,
		Href:        raw.Href,
		Links:       links,
		Collapsible: raw.Collapsible,
		Expanded:    raw.Expanded,
		Icon:        raw.Icon,
	}, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Parse decodes a YAML navigation document: a top-level sequence of entries.
func Parse(data []byte) ([]Node, error) {
	var links Links
	if err := yaml.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("parsing navigation: %w", err)
	}
	return links, nil
}

// LoadFile reads and decodes a YAML navigation file.
func LoadFile(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading navigation %s: %w", path, err)
	}
	return Parse(data)
}
