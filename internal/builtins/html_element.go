package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const NameHTMLElement = "cowel_html"

// htmlElementBehavior implements cowel_html: a generic escape hatch
// wrapping its content in an arbitrary HTML element named by its
// first positional argument, grounded on the original implementation's
// HTML_Element_Behavior (which backs most of its per-tag builtins).
type htmlElementBehavior struct{}

func (htmlElementBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	nameArg, ok := firstPositional(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDHTMLElementNameMissing, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_html requires an element name as its first positional argument",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	tag, _ := valueText(nameArg.Value, ctx)
	if !isValidElementName(tag) {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDHTMLElementNameInvalid, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "\"" + tag + "\" is not a valid HTML element name",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	p.Write("<"+tag+">", ast.LangHTML)
	s := engine.ConsumeSequenceGreedy(d.Content, p, ctx)
	p.Write("</"+tag+">", ast.LangHTML)
	return s
}

func (htmlElementBehavior) Display() engine.Display   { return engine.DisplayBlock }
func (htmlElementBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// isValidElementName reports whether tag could plausibly be an HTML
// element name: non-empty, starting with a letter, continuing with
// letters, digits, or hyphens.
func isValidElementName(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && ((r >= '0' && r <= '9') || r == '-'):
		default:
			return false
		}
	}
	return true
}
