package typedoc

import (
	"sort"
	"strings"
	"unicode"
)

// Category groups top-level entries on reference pages and in the sidebar.
type Category string

const (
	CategoryClasses    Category = "Classes"
	CategoryFunctions  Category = "Functions"
	CategoryHooks      Category = "Hooks"
	CategoryComponents Category = "Components"
	CategoryTypes      Category = "Types"
	CategoryVariables  Category = "Variables"
	CategoryEnums      Category = "Enums"
)

// Categories lists categories in display order.
var Categories = []Category{
	CategoryClasses,
	CategoryFunctions,
	CategoryHooks,
	CategoryComponents,
	CategoryTypes,
	CategoryVariables,
	CategoryEnums,
}

// Entry is one documented symbol.
type Entry struct {
	Name       string
	Category   Category
	Kind       Kind
	Summary    string
	Examples   []string
	Signatures []string
	Parameters []Param
	Returns    string
	Members    []Entry
}

// Param documents one parameter of an entry's primary signature.
type Param struct {
	Name     string
	Type     string
	Optional bool
	Summary  string
}

// Doc is the transformed documentation of one package.
type Doc struct {
	Name       string
	Classes    []Entry
	Functions  []Entry
	Hooks      []Entry
	Components []Entry
	Types      []Entry
	Variables  []Entry
	Enums      []Entry
}

// Entries returns the entries of category c.
func (d *Doc) Entries(c Category) []Entry {
	switch c {
	case CategoryClasses:
		return d.Classes
	case CategoryFunctions:
		return d.Functions
	case CategoryHooks:
		return d.Hooks
	case CategoryComponents:
		return d.Components
	case CategoryTypes:
		return d.Types
	case CategoryVariables:
		return d.Variables
	case CategoryEnums:
		return d.Enums
	default:
		return nil
	}
}

// Find returns the first entry named name, searching categories in display order.
func (d *Doc) Find(name string) (Entry, bool) {
	for _, c := range Categories {
		for _, e := range d.Entries(c) {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Len returns the number of top-level entries.
func (d *Doc) Len() int {
	n := 0
	for _, c := range Categories {
		n += len(d.Entries(c))
	}
	return n
}

func (d *Doc) add(e Entry) {
	switch e.Category {
	case CategoryClasses:
		d.Classes = append(d.Classes, e)
	case CategoryFunctions:
		d.Functions = append(d.Functions, e)
	case CategoryHooks:
		d.Hooks = append(d.Hooks, e)
	case CategoryComponents:
		d.Components = append(d.Components, e)
	case CategoryTypes:
		d.Types = append(d.Types, e)
	case CategoryVariables:
		d.Variables = append(d.Variables, e)
	case CategoryEnums:
		d.Enums = append(d.Enums, e)
	}
}

// Transform converts a TypeDoc project into a Doc. Modules and namespaces
// are flattened; entries are sorted by name within each category.
func Transform(project *Reflection) *Doc {
	doc := &Doc{Name: project.Name}
	collect(doc, project.Children)
	for _, c := range Categories {
		entries := doc.Entries(c)
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}
	return doc
}

func collect(doc *Doc, children []Reflection) {
	for i := range children {
		r := &children[i]
		if r.Kind == KindModule || r.Kind == KindNamespace {
			collect(doc, r.Children)
			continue
		}
		category, ok := classify(r)
		if !ok {
			continue
		}
		doc.add(entryFor(r, category))
	}
}

func classify(r *Reflection) (Category, bool) {
	switch r.Kind {
	case KindClass:
		return CategoryClasses, true
	case KindFunction:
		if isHookName(r.Name) {
			return CategoryHooks, true
		}
		if isComponentName(r.Name) {
			return CategoryComponents, true
		}
		return CategoryFunctions, true
	case KindInterface, KindTypeAlias:
		return CategoryTypes, true
	case KindVariable:
		return CategoryVariables, true
	case KindEnum:
		return CategoryEnums, true
	default:
		return "", false
	}
}

// isHookName matches React hook names: "use" followed by an upper-case letter.
func isHookName(name string) bool {
	if !strings.HasPrefix(name, "use") || len(name) < 4 {
		return false
	}
	return unicode.IsUpper(rune(name[3]))
}

// isComponentName matches PascalCase names that are not SCREAMING_CASE constants.
func isComponentName(name string) bool {
	if name == "" {
		return false
	}
	first := []rune(name)[0]
	return unicode.IsUpper(first) && strings.ToUpper(name) != name
}

func entryFor(r *Reflection, category Category) Entry {
	e := Entry{
		Name:     r.Name,
		Category: category,
		Kind:     r.Kind,
		Summary:  summaryOf(r.Comment),
		Examples: examplesOf(r.Comment),
	}

	switch r.Kind {
	case KindFunction:
		applySignatures(&e, r.Name, r.Signatures)
	case KindClass:
		for i := range r.Children {
			c := &r.Children[i]
			if c.Kind == KindConstructor {
				applySignatures(&e, "new "+r.Name, c.Signatures)
				continue
			}
			if m, ok := memberFor(c); ok {
				e.Members = append(e.Members, m)
			}
		}
	case KindInterface:
		e.Signatures = []string{"interface " + r.Name}
		for i := range r.Children {
			if m, ok := memberFor(&r.Children[i]); ok {
				e.Members = append(e.Members, m)
			}
		}
	case KindTypeAlias:
		e.Signatures = []string{"type " + r.Name + " = " + TypeString(r.Type)}
	case KindVariable:
		e.Signatures = []string{"const " + r.Name + ": " + TypeString(r.Type)}
	case KindEnum:
		e.Signatures = []string{"enum " + r.Name}
		for i := range r.Children {
			c := &r.Children[i]
			member := Entry{Name: c.Name, Kind: c.Kind, Summary: summaryOf(c.Comment)}
			if c.Type != nil {
				member.Signatures = []string{c.Name + " = " + TypeString(c.Type)}
			} else if c.DefaultValue != "" {
				member.Signatures = []string{c.Name + " = " + c.DefaultValue}
			}
			e.Members = append(e.Members, member)
		}
	}
	return e
}

// applySignatures records every overload and documents the primary one.
// The reflection's comment wins over the signature's for the summary.
func applySignatures(e *Entry, name string, sigs []Signature) {
	for i, sig := range sigs {
		e.Signatures = append(e.Signatures, SignatureString(name, sig))
		if i != 0 {
			continue
		}
		if e.Summary == "" {
			e.Summary = summaryOf(sig.Comment)
		}
		if len(e.Examples) == 0 {
			e.Examples = examplesOf(sig.Comment)
		}
		e.Returns = blockTag(sig.Comment, "@returns")
		for _, p := range sig.Parameters {
			e.Parameters = append(e.Parameters, Param{
				Name:     p.Name,
				Type:     TypeString(p.Type),
				Optional: p.Flags.IsOptional,
				Summary:  summaryOf(p.Comment),
			})
		}
	}
}

func memberFor(r *Reflection) (Entry, bool) {
	if r.Flags.IsPrivate || r.Flags.IsProtected || strings.HasPrefix(r.Name, "#") {
		return Entry{}, false
	}
	m := Entry{Name: r.Name, Kind: r.Kind, Summary: summaryOf(r.Comment), Examples: examplesOf(r.Comment)}
	switch r.Kind {
	case KindMethod:
		applySignatures(&m, r.Name, r.Signatures)
	case KindProperty:
		name := r.Name
		if r.Flags.IsOptional {
			name += "?"
		}
		if r.Flags.IsReadonly {
			name = "readonly " + name
		}
		m.Signatures = []string{name + ": " + TypeString(r.Type)}
	case KindAccessor:
		if r.GetSignature != nil {
			m.Signatures = []string{"get " + r.Name + "(): " + TypeString(r.GetSignature.Type)}
			if m.Summary == "" {
				m.Summary = summaryOf(r.GetSignature.Comment)
			}
		}
	default:
		return Entry{}, false
	}
	return m, true
}

func summaryOf(c *Comment) string {
	if c == nil {
		return ""
	}
	return Text(c.Summary)
}

func examplesOf(c *Comment) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, tag := range c.BlockTags {
		if tag.Tag == "@example" {
			if text := Text(tag.Content); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

func blockTag(c *Comment, name string) string {
	if c == nil {
		return ""
	}
	for _, tag := range c.BlockTags {
		if tag.Tag == name {
			return Text(tag.Content)
		}
	}
	return ""
}
