package typedoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TypeString renders a type expression as TypeScript source.
func TypeString(t *Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Type {
	case "intrinsic", "typeParameter", "unknown":
		return t.Name
	case "reference":
		if len(t.TypeArguments) == 0 {
			return t.Name
		}
		return t.Name + "<" + joinTypes(t.TypeArguments, ", ") + ">"
	case "array":
		inner := TypeString(t.ElementType)
		if t.ElementType != nil && (t.ElementType.Type == "union" || t.ElementType.Type == "intersection") {
			inner = "(" + inner + ")"
		}
		return inner + "[]"
	case "union":
		return joinTypes(t.Types, " | ")
	case "intersection":
		return joinTypes(t.Types, " & ")
	case "tuple":
		return "[" + joinTypes(t.Elements, ", ") + "]"
	case "literal":
		return literalString(t.Value)
	case "typeOperator":
		return t.Operator + " " + TypeString(t.OperatorTarget())
	case "indexedAccess":
		return TypeString(t.ObjectType) + "[" + TypeString(t.IndexType) + "]"
	case "query":
		return "typeof " + TypeString(t.QueryType)
	case "reflection":
		return declarationString(t.Declaration)
	default:
		if t.Name != "" {
			return t.Name
		}
		return t.Type
	}
}

func joinTypes(types []*Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = TypeString(t)
	}
	return strings.Join(parts, sep)
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// declarationString renders an inline object or function type.
func declarationString(d *Reflection) string {
	if d == nil {
		return "object"
	}
	if len(d.Signatures) > 0 {
		sig := d.Signatures[0]
		return "(" + paramsString(sig.Parameters) + ") => " + TypeString(sig.Type)
	}
	if len(d.Children) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(d.Children))
	for _, c := range d.Children {
		name := c.Name
		if c.Flags.IsOptional {
			name += "?"
		}
		parts = append(parts, name+": "+TypeString(c.Type))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func paramsString(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if p.Flags.IsRest {
			name = "..." + name
		}
		if p.Flags.IsOptional {
			name += "?"
		}
		parts[i] = name + ": " + TypeString(p.Type)
	}
	return strings.Join(parts, ", ")
}

// SignatureString renders a call signature as a TypeScript declaration.
func SignatureString(name string, sig Signature) string {
	var b strings.Builder
	b.WriteString(name)
	if len(sig.TypeParameters) > 0 {
		names := make([]string, len(sig.TypeParameters))
		for i, tp := range sig.TypeParameters {
			names[i] = tp.Name
		}
		b.WriteString("<" + strings.Join(names, ", ") + ">")
	}
	b.WriteString("(" + paramsString(sig.Parameters) + ")")
	if sig.Kind != KindConstructorSignature {
		b.WriteString(": " + TypeString(sig.Type))
	}
	return b.String()
}

// Text flattens comment parts into Markdown.
func Text(parts []CommentPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
