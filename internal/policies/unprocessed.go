package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// Unprocessed writes text and escape source verbatim, and writes a
// directive's source verbatim without invoking it — so `\X{Y}` always
// produces literally `\X{Y}`, regardless of whether `X` is defined
// (spec.md §4.1, §8's round-trip invariant).
type Unprocessed struct {
	Parent engine.ContentPolicy
}

func NewUnprocessed(parent engine.ContentPolicy) *Unprocessed { return &Unprocessed{Parent: parent} }

func (u *Unprocessed) NativeLanguage() ast.Language { return ast.LangText }

func (u *Unprocessed) Write(chars string, lang ast.Language) bool {
	return u.Parent.Write(chars, ast.LangText)
}

func (u *Unprocessed) Consume(n ast.Node, ctx *engine.Context) status.Status {
	switch node := n.(type) {
	case *ast.Text:
		u.Write(ast.Source(node, ctx.Source), ast.LangText)
	case *ast.Escape:
		u.Write(ast.Source(node, ctx.Source), ast.LangText)
	case *ast.Comment:
		// dropped, like every other policy
	case *ast.Directive:
		u.Write(ast.Source(node, ctx.Source), ast.LangText)
	case *ast.Generated:
		u.Write(node.Value, node.Language)
	}
	return status.OK
}
