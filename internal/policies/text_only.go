package policies

import (
	"strings"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// TextOnly accepts text and drops HTML writes, for contexts that need
// a plain-text result (attribute values, ID names). Directives of
// category pure-HTML are skipped silently rather than dispatched,
// since anything they'd produce can't be represented as text
// (spec.md §4.1, §4.2).
type TextOnly struct {
	Parent engine.ContentPolicy
}

func NewTextOnly(parent engine.ContentPolicy) *TextOnly { return &TextOnly{Parent: parent} }

func (t *TextOnly) NativeLanguage() ast.Language { return ast.LangText }

func (t *TextOnly) Write(chars string, lang ast.Language) bool {
	if lang == ast.LangHTML {
		return false
	}
	return t.Parent.Write(chars, ast.LangText)
}

func (t *TextOnly) Consume(n ast.Node, ctx *engine.Context) status.Status {
	if d, ok := n.(*ast.Directive); ok {
		if b, found, _ := engine.Dispatch(ctx, d.Name); found && b.Category() == engine.CategoryPureHTML {
			return status.OK
		}
	}
	return consumeAsHTML(t, n, ctx)
}

// ToPlaintext instantiates a transient Text-Only policy over nodes and
// returns the text it collects, per spec.md §4.1's `to_plaintext`
// helper. An "optimistic" zero-copy fast path is used when nodes is a
// single Text node and the original source is available.
func ToPlaintext(nodes []ast.Node, ctx *engine.Context) (string, status.Status) {
	if len(nodes) == 1 {
		if t, ok := nodes[0].(*ast.Text); ok {
			return t.Value, status.OK
		}
	}
	sink := &stringSink{}
	policy := NewTextOnly(sink)
	result := engine.ConsumeSequenceGreedy(nodes, policy, ctx)
	return sink.sb.String(), result
}

// stringSink is a minimal ContentPolicy that just accumulates text,
// used as the innermost parent for ToPlaintext's transient buffer.
type stringSink struct {
	sb strings.Builder
}

func (s *stringSink) NativeLanguage() ast.Language { return ast.LangText }
func (s *stringSink) Write(chars string, lang ast.Language) bool {
	s.sb.WriteString(chars)
	return true
}
func (s *stringSink) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return consumeAsHTML(s, n, ctx)
}
