package engine

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// ApplyDirective resolves d against ctx's resolver stack and runs its
// behavior under p, per spec.md §4.2. On a lookup miss it logs
// directive_lookup_unresolved (with a fuzzy-match suggestion when one
// is available) and renders the error sentinel in its place.
//
// Every concrete ContentPolicy's Consume delegates directive handling
// here so the dispatch-miss/error-sentinel logic lives in one place.
func ApplyDirective(p ContentPolicy, d *ast.Directive, ctx *Context) status.Status {
	behavior, ok, suggestion := Dispatch(ctx, d.Name)
	if !ok {
		msg := "directive \"" + d.Name + "\" did not resolve to a known directive"
		if suggestion != "" {
			msg += "; did you mean \"" + suggestion + "\"?"
		}
		ctx.Log(diag.Diagnostic{
			ID:       diag.IDDirectiveLookupUnresolved,
			Severity: diag.SeverityError,
			Span:     d.SourceSpan,
			Message:  msg,
		})
		return TryGenerateError(p, d, ctx)
	}
	return behavior.Apply(p, d, ctx)
}
