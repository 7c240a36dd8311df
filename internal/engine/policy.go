package engine

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// ContentPolicy is the abstract sink every piece of content flows
// through: a text sink plus a node consumer, per spec.md §4.1.
type ContentPolicy interface {
	// NativeLanguage is the language this policy natively accepts.
	NativeLanguage() ast.Language
	// Write accepts a chunk of text declared in lang. It returns false
	// if the policy refuses writes in that language outright.
	Write(chars string, lang ast.Language) bool
	// Consume processes a single AST node: text is written via Write,
	// escapes are expanded then written, comments are dropped,
	// directives are dispatched, and Generated nodes are written in
	// their declared language.
	Consume(n ast.Node, ctx *Context) status.Status
}

// Display governs how a directive behavior interacts with paragraph
// splitting (spec.md §4.2, §4.5).
type Display int

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayMacro
)

func (d Display) String() string {
	switch d {
	case DisplayNone:
		return "none"
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	case DisplayMacro:
		return "macro"
	default:
		return "invalid"
	}
}

// Category is used by policies deciding how to treat a directive (e.g.
// Text-Only silently skips pure-html content), per spec.md §4.2.
type Category int

const (
	CategoryMeta Category = iota
	CategoryPureText
	CategoryPureHTML
	CategoryFormatting
	CategoryMacro
)

func (c Category) String() string {
	switch c {
	case CategoryMeta:
		return "meta"
	case CategoryPureText:
		return "pure-text"
	case CategoryPureHTML:
		return "pure-html"
	case CategoryFormatting:
		return "formatting"
	case CategoryMacro:
		return "macro"
	default:
		return "invalid"
	}
}

// Behavior is a directive's handler: the evaluation logic plus the
// static metadata policies use to decide how to treat it, per
// spec.md §4.2.
type Behavior interface {
	Apply(p ContentPolicy, d *ast.Directive, ctx *Context) status.Status
	Display() Display
	Category() Category
}

// ConsumeSequenceGreedy visits every node, continuing past Error
// states but stopping on the first Break state; this is the default
// for document-level iteration (spec.md §4.3).
func ConsumeSequenceGreedy(nodes []ast.Node, p ContentPolicy, ctx *Context) status.Status {
	result := status.OK
	for _, n := range nodes {
		s := p.Consume(n, ctx)
		result = status.Concat(result, s)
		if result.IsBreak() {
			break
		}
	}
	return result
}

// ConsumeSequenceLazy visits nodes until the first non-OK status, then
// stops (spec.md §4.3).
func ConsumeSequenceLazy(nodes []ast.Node, p ContentPolicy, ctx *Context) status.Status {
	for _, n := range nodes {
		s := p.Consume(n, ctx)
		if s != status.OK {
			return s
		}
	}
	return status.OK
}
