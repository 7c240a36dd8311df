// Package ast defines the immutable AST produced by the parser and
// consumed by the engine: text, escapes, comments, directive
// invocations, and behavior-generated synthetic content, per spec.md §3.
package ast

import "github.com/eisenwave/cowel-sub001/internal/diag"

// Language tags a chunk of text (or a Generated node) with the output
// language it is expressed in, per spec.md §4.1.
type Language int

const (
	// LangNone carries no text meaning at all (used by Ignorant writes).
	LangNone Language = iota
	// LangText is plain text with no markup meaning.
	LangText
	// LangHTML is text that is already valid HTML and must not be
	// escaped again.
	LangHTML
)

func (l Language) String() string {
	switch l {
	case LangNone:
		return "none"
	case LangText:
		return "text"
	case LangHTML:
		return "html"
	default:
		return "invalid"
	}
}

// Node is the sum type of every AST node variant. Concrete types below
// implement it via an unexported marker method, the idiomatic Go
// replacement for a tagged union.
type Node interface {
	node()
	// Span returns the node's source location.
	Span() diag.Span
}

// Text is a literal span of source characters with no escaping or
// directive meaning.
type Text struct {
	Value string
	SourceSpan diag.Span
}

func (*Text) node()             {}
func (t *Text) Span() diag.Span { return t.SourceSpan }

// Escape is a two-character escape sequence whose expansion is a
// single code point; "\<LF>" and "\<CRLF>" expand to empty.
type Escape struct {
	// Expansion is the code point(s) the escape expands to ("" for
	// line-continuation escapes).
	Expansion string
	SourceSpan diag.Span
}

func (*Escape) node()             {}
func (e *Escape) Span() diag.Span { return e.SourceSpan }

// Comment is a "\:...EOL" line comment. It never produces output.
type Comment struct {
	SourceSpan diag.Span
}

func (*Comment) node()             {}
func (c *Comment) Span() diag.Span { return c.SourceSpan }

// ArgumentKind distinguishes the three ways an argument can be
// introduced in an invocation, per spec.md §3.
type ArgumentKind int

const (
	ArgPositional ArgumentKind = iota
	ArgNamed
	ArgEllipsis
)

// ValueKind distinguishes the three shapes a Value can take.
type ValueKind int

const (
	ValueContent ValueKind = iota // a content sequence: []Node
	ValueGroup                    // a group: []GroupMember
	ValuePrimitive                 // a primitive literal
)

// PrimitiveKind enumerates the primitive literal shapes from spec.md §6.
type PrimitiveKind int

const (
	PrimInt PrimitiveKind = iota
	PrimFloat
	PrimBool
	PrimString
	PrimNull
	PrimUnit
	PrimInfinity
)

// Primitive is a single literal value: exactly one of the fields below
// is meaningful, selected by Kind.
type Primitive struct {
	Kind   PrimitiveKind
	Int    int64
	Float  float64
	Bool   bool
	String string
}

// GroupMember is one entry of a Group value; groups nest arbitrarily
// via Value recursion (a group member's value may itself be a group).
type GroupMember struct {
	Name  string // empty if positional within the group
	Value Value
}

// Value is the payload of an Argument: a content sequence, a group, or
// a primitive literal, per spec.md §3.
type Value struct {
	Kind      ValueKind
	Content   []Node
	Group     []GroupMember
	Primitive Primitive
}

// Argument is one entry of a Directive's argument list.
type Argument struct {
	Kind ArgumentKind
	Name string // meaningful only when Kind == ArgNamed
	Value Value
	SourceSpan diag.Span
}

// Directive is a named invocation "\name(arguments){content}".
type Directive struct {
	Name       string
	NameSpan   diag.Span
	Arguments  []Argument
	Content    []Node
	SourceSpan diag.Span
}

func (*Directive) node()             {}
func (d *Directive) Span() diag.Span { return d.SourceSpan }

// Generated is synthetic text injected by a behavior (as opposed to
// text parsed from source), tagged with the language it is expressed in.
type Generated struct {
	Value    string
	Language Language
}

func (*Generated) node() {}
func (g *Generated) Span() diag.Span { return diag.Span{} }

// Source returns the original source text a node spans, given the full
// source buffer it was parsed from. Used by the To-Source and
// Unprocessed policies (spec.md §4.1).
func Source(n Node, fullSource string) string {
	sp := n.Span()
	if sp.Begin < 0 || sp.End > len(fullSource) || sp.Begin > sp.End {
		return ""
	}
	return fullSource[sp.Begin:sp.End]
}
