// Package policies implements the concrete content policies of
// spec.md §4.1: HTML, HTML-Literal, Text-Only, To-Source, Unprocessed,
// Phantom, Ignorant, and Actions. Paragraph-Split and Syntax-Highlight
// live in their own packages (paragraph, highlight) since each needs
// a dedicated state machine; they still implement engine.ContentPolicy
// and compose with everything here the same way.
package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// consumeAsHTML is the default node dispatch shared by every policy
// whose shape matches spec.md §4.1's generic description: text and
// expanded escapes are written through p.Write, comments are dropped,
// directives dispatch through engine.ApplyDirective, and Generated
// nodes are forwarded in their declared language. Individual policies
// differ only in what their own Write does with each language.
func consumeAsHTML(p engine.ContentPolicy, n ast.Node, ctx *engine.Context) status.Status {
	switch node := n.(type) {
	case *ast.Text:
		p.Write(node.Value, ast.LangText)
		return status.OK
	case *ast.Escape:
		p.Write(node.Expansion, ast.LangText)
		return status.OK
	case *ast.Comment:
		return status.OK
	case *ast.Directive:
		return engine.ApplyDirective(p, node, ctx)
	case *ast.Generated:
		p.Write(node.Value, node.Language)
		return status.OK
	default:
		return status.OK
	}
}

// SectionSink is the terminal sink at the bottom of every policy
// stack: it writes accepted text straight into the context's current
// output section (spec.md §3 "Sections"). By the time content reaches
// the sink it has already been converted to HTML by the policies
// above it, so it accepts any declared language except none.
type SectionSink struct {
	Ctx *engine.Context
}

// NewSectionSink returns a sink writing into ctx's current section.
func NewSectionSink(ctx *engine.Context) *SectionSink { return &SectionSink{Ctx: ctx} }

func (s *SectionSink) NativeLanguage() ast.Language { return ast.LangHTML }

func (s *SectionSink) Write(chars string, lang ast.Language) bool {
	if lang == ast.LangNone {
		return false
	}
	s.Ctx.Sections.WriteString(chars)
	return true
}

func (s *SectionSink) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return consumeAsHTML(s, n, ctx)
}
