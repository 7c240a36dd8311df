package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// Actions forwards directive invocations to its parent (so their
// side effects, like cowel_put, still happen) but drops everything
// else — the directive's own primary output if any, plus any text,
// escape, comment, or generated content alongside it. Used for
// side-effect-only execution (spec.md §4.1).
type Actions struct {
	Parent engine.ContentPolicy
}

func NewActions(parent engine.ContentPolicy) *Actions { return &Actions{Parent: parent} }

func (a *Actions) NativeLanguage() ast.Language { return a.Parent.NativeLanguage() }

func (a *Actions) Write(chars string, lang ast.Language) bool { return false }

func (a *Actions) Consume(n ast.Node, ctx *engine.Context) status.Status {
	d, ok := n.(*ast.Directive)
	if !ok {
		return status.OK
	}
	return engine.ApplyDirective(a.Parent, d, ctx)
}
