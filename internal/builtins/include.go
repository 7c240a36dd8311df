package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/parse"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const NameInclude = "cowel_include"

// includeBehavior implements cowel_include: it loads a file through
// ctx.FileLoader, parses its contents as COWEL source, and consumes
// the result in place, as if the included text had appeared literally
// at the invocation site. Grounded on the File_Loader service named in
// spec.md §6 (not one of the original spec's explicit directives, but
// implied by that service existing at all).
type includeBehavior struct{}

func (includeBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	pathArg, ok := firstPositional(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDFileLoadError, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_include requires a file path as its first positional argument",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	path, _ := valueText(pathArg.Value, ctx)

	if ctx.FileLoader == nil {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDFileLoadError, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "no file loader is configured, \"" + path + "\" cannot be included",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	entry, err := ctx.FileLoader.Load(path)
	if err != nil {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDFileLoadError, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "failed to include \"" + path + "\": " + err.Error(),
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	nodes := parse.Parse(entry.Source)
	return engine.ConsumeSequenceGreedy(nodes, p, ctx)
}

func (includeBehavior) Display() engine.Display   { return engine.DisplayMacro }
func (includeBehavior) Category() engine.Category { return engine.CategoryMeta }
