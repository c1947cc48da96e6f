// Package typedoc converts TypeDoc JSON output into a compact documentation
// tree used to render reference pages and their sidebar.
package typedoc

import "encoding/json"

// Kind is TypeDoc's ReflectionKind bit flag.
type Kind int

const (
	KindProject              Kind = 0x1
	KindModule               Kind = 0x2
	KindNamespace            Kind = 0x4
	KindEnum                 Kind = 0x8
	KindEnumMember           Kind = 0x10
	KindVariable             Kind = 0x20
	KindFunction             Kind = 0x40
	KindClass                Kind = 0x80
	KindInterface            Kind = 0x100
	KindConstructor          Kind = 0x200
	KindProperty             Kind = 0x400
	KindMethod               Kind = 0x800
	KindCallSignature        Kind = 0x1000
	KindIndexSignature       Kind = 0x2000
	KindConstructorSignature Kind = 0x4000
	KindParameter            Kind = 0x8000
	KindTypeLiteral          Kind = 0x10000
	KindTypeParameter        Kind = 0x20000
	KindAccessor             Kind = 0x40000
	KindGetSignature         Kind = 0x80000
	KindSetSignature         Kind = 0x100000
	KindTypeAlias            Kind = 0x200000
	KindReference            Kind = 0x400000
)

// Reflection is a node of the TypeDoc JSON tree.
type Reflection struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Kind           Kind         `json:"kind"`
	Flags          Flags        `json:"flags"`
	Comment        *Comment     `json:"comment,omitempty"`
	Children       []Reflection `json:"children,omitempty"`
	Signatures     []Signature  `json:"signatures,omitempty"`
	GetSignature   *Signature   `json:"getSignature,omitempty"`
	Type           *Type        `json:"type,omitempty"`
	TypeParameters []Parameter  `json:"typeParameters,omitempty"`
	DefaultValue   string       `json:"defaultValue,omitempty"`
}

// Flags carries the subset of TypeDoc reflection flags rendered on pages.
type Flags struct {
	IsOptional  bool `json:"isOptional,omitempty"`
	IsStatic    bool `json:"isStatic,omitempty"`
	IsPrivate   bool `json:"isPrivate,omitempty"`
	IsProtected bool `json:"isProtected,omitempty"`
	IsReadonly  bool `json:"isReadonly,omitempty"`
	IsRest      bool `json:"isRest,omitempty"`
}

// Comment is a parsed doc comment.
type Comment struct {
	Summary   []CommentPart `json:"summary,omitempty"`
	BlockTags []BlockTag    `json:"blockTags,omitempty"`
}

// CommentPart is a run of comment text. Code parts keep their backticks.
type CommentPart struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// BlockTag is an @tag section such as @example or @returns.
type BlockTag struct {
	Tag     string        `json:"tag"`
	Content []CommentPart `json:"content,omitempty"`
}

// Signature is a call, construct, or accessor signature.
type Signature struct {
	Name           string      `json:"name"`
	Kind           Kind        `json:"kind"`
	Comment        *Comment    `json:"comment,omitempty"`
	Parameters     []Parameter `json:"parameters,omitempty"`
	TypeParameters []Parameter `json:"typeParameters,omitempty"`
	Type           *Type       `json:"type,omitempty"`
}

// Parameter is a function or type parameter.
type Parameter struct {
	Name         string   `json:"name"`
	Flags        Flags    `json:"flags"`
	Comment      *Comment `json:"comment,omitempty"`
	Type         *Type    `json:"type,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
}

// Type is a TypeDoc type expression, discriminated by Type.
type Type struct {
	Type          string          `json:"type"`
	Name          string          `json:"name,omitempty"`
	Value         any             `json:"value,omitempty"`
	Types         []*Type         `json:"types,omitempty"`
	Elements      []*Type         `json:"elements,omitempty"`
	ElementType   *Type           `json:"elementType,omitempty"`
	TypeArguments []*Type         `json:"typeArguments,omitempty"`
	Operator      string          `json:"operator,omitempty"`
	Target        json.RawMessage `json:"target,omitempty"`
	ObjectType    *Type           `json:"objectType,omitempty"`
	IndexType     *Type           `json:"indexType,omitempty"`
	QueryType     *Type           `json:"queryType,omitempty"`
	Declaration   *Reflection     `json:"declaration,omitempty"`
}

// OperatorTarget decodes the operand of a typeOperator type. Reference types
// reuse the target key for a symbol id, which decodes to nil here.
func (t *Type) OperatorTarget() *Type {
	if t == nil || len(t.Target) == 0 || t.Target[0] != '{' {
		return nil
	}
	var target Type
	if err := json.Unmarshal(t.Target, &target); err != nil || target.Type == "" {
		return nil
	}
	return &target
}
