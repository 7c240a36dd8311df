package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// HTMLLiteral accepts only text and forwards it to the parent sink
// unescaped, for raw blocks like `\html{...}` (spec.md §4.1).
type HTMLLiteral struct {
	Parent engine.ContentPolicy
}

func NewHTMLLiteral(parent engine.ContentPolicy) *HTMLLiteral { return &HTMLLiteral{Parent: parent} }

func (l *HTMLLiteral) NativeLanguage() ast.Language { return ast.LangText }

func (l *HTMLLiteral) Write(chars string, lang ast.Language) bool {
	if lang != ast.LangText {
		return false
	}
	return l.Parent.Write(chars, ast.LangHTML)
}

func (l *HTMLLiteral) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return consumeAsHTML(l, n, ctx)
}
