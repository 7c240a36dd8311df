package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/highlight"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const NameHighlightAs = "cowel_highlight_as"

// highlightAsBehavior implements cowel_highlight_as (spec.md §8,
// scenario 6): its first positional argument is a long-form highlight
// name, and its content is wrapped in a single `<h- data-h=...>` span
// without running the tokenizer — a manual override for a single token.
type highlightAsBehavior struct{}

func (highlightAsBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	nameArg, ok := firstPositional(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDHighlightLanguage, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_highlight_as requires a highlight name as its first positional argument",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	longName, ok := valueSoleText(nameArg.Value)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDHighlightLanguage, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_highlight_as's name argument must be plain text",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	shortName, ok := highlight.ShortNameForLongName(longName)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDHighlightLanguage, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "unknown highlight name \"" + longName + "\"",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	p.Write("<h- data-h="+shortName+">", ast.LangHTML)
	s := engine.ConsumeSequenceGreedy(d.Content, p, ctx)
	p.Write("</h->", ast.LangHTML)
	return s
}

func (highlightAsBehavior) Display() engine.Display   { return engine.DisplayInline }
func (highlightAsBehavior) Category() engine.Category { return engine.CategoryFormatting }

// soleText returns the literal value of nodes if it holds exactly one
// Text node, without escaping or otherwise transforming it.
func soleText(nodes []ast.Node) (string, bool) {
	if len(nodes) != 1 {
		return "", false
	}
	t, ok := nodes[0].(*ast.Text)
	if !ok {
		return "", false
	}
	return t.Value, true
}
