package builtins

import (
	"strings"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const NameHTMLRaw = "cowel_html_raw"

// htmlRawBehavior implements `\cowel_html_raw{...}`: content is
// consumed under the HTML-Literal policy and forwarded to the parent
// verbatim, with no escaping (spec.md §4.1's HTML-Literal row). This
// is the general-purpose raw-HTML escape hatch; rawTextElementBehavior
// below covers the two named elements (script, style) whose raw text
// additionally must not contain its own closing tag.
type htmlRawBehavior struct{}

func (htmlRawBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	lit := policies.NewHTMLLiteral(p)
	return engine.ConsumeSequenceGreedy(d.Content, lit, ctx)
}

func (htmlRawBehavior) Display() engine.Display   { return engine.DisplayBlock }
func (htmlRawBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// rawTextElementBehavior implements the `\script{...}` and
// `\style{...}` directives: their content is an HTML raw-text element
// body, written verbatim like cowel_html_raw, but additionally checked
// for a literal closing tag, which would truncate the element early in
// an actual HTML parser (grounded on
// original_source/src/test/cpp/test_document_generation_data.cpp's
// "\\script{</script>}" -> diagnostic::raw_text_closing case).
type rawTextElementBehavior struct {
	tag string
}

func (b rawTextElementBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	plain, _ := policies.ToPlaintext(d.Content, ctx)
	if containsClosingTag(plain, b.tag) {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDRawTextClosing, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "\\" + b.tag + "{...} content contains a literal \"</" + b.tag + "\", which would close the element early",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	p.Write("<"+b.tag+">", ast.LangHTML)
	lit := policies.NewHTMLLiteral(p)
	s := engine.ConsumeSequenceGreedy(d.Content, lit, ctx)
	p.Write("</"+b.tag+">", ast.LangHTML)
	return s
}

func (rawTextElementBehavior) Display() engine.Display   { return engine.DisplayBlock }
func (rawTextElementBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// containsClosingTag reports whether text contains a case-insensitive
// "</tag" occurrence, the HTML tokenizer rule for ending a raw text
// element (https://html.spec.whatwg.org/#rawtext-end-tag-open-state,
// mirrored by the original implementation's check).
func containsClosingTag(text, tag string) bool {
	return strings.Contains(strings.ToLower(text), "</"+strings.ToLower(tag))
}
