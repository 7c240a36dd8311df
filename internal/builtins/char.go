package builtins

import (
	"strconv"
	"strings"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const NameCharByEntity = "cowel_char_by_entity"

// charByEntityBehavior implements cowel_char_by_entity (spec.md §8,
// scenarios 1-2): content is a numeric character reference of the
// form "#<decimal>" or "#x<hex>", emitted as the literal code point.
type charByEntityBehavior struct{}

func (charByEntityBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	text, _ := policies.ToPlaintext(d.Content, ctx)
	text = strings.TrimSpace(text)

	if text == "" || text[0] != '#' {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDCharBlank, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_char_by_entity requires a '#' numeric character reference",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	digits := text[1:]
	base := 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		base = 16
		digits = digits[1:]
	}
	if digits == "" {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDCharBlank, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_char_by_entity is missing its digits",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	code, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDCharDigits, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_char_by_entity's digits \"" + digits + "\" are not valid in base " + strconv.Itoa(base),
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	if !isUnicodeScalar(code) {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDCharNonscalar, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "code point U+" + strconv.FormatInt(code, 16) + " is not a valid Unicode scalar value",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	p.Write(string(rune(code)), ast.LangText)
	return status.OK
}

func (charByEntityBehavior) Display() engine.Display   { return engine.DisplayInline }
func (charByEntityBehavior) Category() engine.Category { return engine.CategoryPureText }

// isUnicodeScalar reports whether code is a valid Unicode scalar value:
// in range and not a surrogate code point.
func isUnicodeScalar(code int64) bool {
	if code < 0 || code > 0x10FFFF {
		return false
	}
	return code < 0xD800 || code > 0xDFFF
}
