package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// HTML is the default output policy (spec.md §4.1): text writes are
// HTML-entity-escaped before being forwarded to the parent sink,
// directives dispatch normally, and comments are dropped.
type HTML struct {
	Parent engine.ContentPolicy
}

// NewHTML wraps parent with the HTML policy.
func NewHTML(parent engine.ContentPolicy) *HTML { return &HTML{Parent: parent} }

func (h *HTML) NativeLanguage() ast.Language { return ast.LangHTML }

func (h *HTML) Write(chars string, lang ast.Language) bool {
	switch lang {
	case ast.LangHTML:
		return h.Parent.Write(chars, ast.LangHTML)
	case ast.LangText:
		return h.Parent.Write(engine.EscapeText(chars), ast.LangHTML)
	default:
		return false
	}
}

func (h *HTML) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return consumeAsHTML(h, n, ctx)
}
