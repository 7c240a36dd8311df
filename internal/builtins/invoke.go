package builtins

import (
	"unicode"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// invokeBehavior implements cowel_invoke (spec.md §4.4): its first
// positional argument names a directive, and the call is rewritten to
// invoke that directive with the remaining arguments and content.
type invokeBehavior struct{}

func (invokeBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	nameArg, rest, ok := firstPositionalAndRest(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDInvokeNameInvalid, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_invoke requires a directive name as its first positional argument",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	name, _ := valueText(nameArg.Value, ctx)
	if !isValidDirectiveName(name) {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDInvokeNameInvalid, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_invoke's name argument \"" + name + "\" is not a valid directive identifier",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	rewritten := &ast.Directive{
		Name:       name,
		NameSpan:   d.NameSpan,
		Arguments:  rest,
		Content:    d.Content,
		SourceSpan: d.SourceSpan,
	}
	return engine.ApplyDirective(p, rewritten, ctx)
}

func (invokeBehavior) Display() engine.Display   { return engine.DisplayInline }
func (invokeBehavior) Category() engine.Category { return engine.CategoryFormatting }

// firstPositionalAndRest returns the first positional argument and
// every other argument (in original order), if a first positional
// argument exists.
func firstPositionalAndRest(args []ast.Argument) (ast.Argument, []ast.Argument, bool) {
	for i, a := range args {
		if a.Kind == ast.ArgPositional {
			rest := make([]ast.Argument, 0, len(args)-1)
			rest = append(rest, args[:i]...)
			rest = append(rest, args[i+1:]...)
			return a, rest, true
		}
	}
	return ast.Argument{}, nil, false
}

// isValidDirectiveName reports whether name is a syntactically valid
// directive identifier: non-empty, starting with a letter or
// underscore, continuing with letters, digits, or underscores.
func isValidDirectiveName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
			continue
		case unicode.IsDigit(r) && i > 0:
			continue
		default:
			return false
		}
	}
	return true
}
