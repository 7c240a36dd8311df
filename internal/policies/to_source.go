package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// ToSource writes the original source span of every node, including
// directives, verbatim, never invoking them. Used by
// `cowel_source_as_text` (spec.md §4.1, §8's round-trip invariant).
type ToSource struct {
	Parent engine.ContentPolicy
}

func NewToSource(parent engine.ContentPolicy) *ToSource { return &ToSource{Parent: parent} }

func (s *ToSource) NativeLanguage() ast.Language { return ast.LangText }

func (s *ToSource) Write(chars string, lang ast.Language) bool {
	return s.Parent.Write(chars, ast.LangText)
}

func (s *ToSource) Consume(n ast.Node, ctx *engine.Context) status.Status {
	if g, ok := n.(*ast.Generated); ok {
		// Generated nodes are synthetic and have no source span.
		s.Write(g.Value, g.Language)
		return status.OK
	}
	s.Write(ast.Source(n, ctx.Source), ast.LangText)
	return status.OK
}
