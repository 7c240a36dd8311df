package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/section"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const (
	NameMakeBib      = "make_bib"
	NameMakeContents = "make_contents"
	NameRef          = "cowel_ref"
)

// sectionMarkerBehavior emits a section-reference marker for a fixed
// well-known section (spec.md §4.7): make_bib for std.bib, make_contents
// for std.toc. The marker is resolved to that section's accumulated
// text once the whole document has been consumed.
type sectionMarkerBehavior struct {
	section string
}

func (b sectionMarkerBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	p.Write(section.EncodeMarker(b.section), ast.LangHTML)
	return status.OK
}

func (sectionMarkerBehavior) Display() engine.Display   { return engine.DisplayBlock }
func (sectionMarkerBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// refBehavior implements cowel_ref: a cross-reference link to a
// previously registered ID (spec.md §3's ID table, via
// Context.RegisterID). An empty argument is ref_to_empty; an
// argument naming an ID that was never registered is ref_to_missing.
// The check runs immediately, against the ID table as it stands at
// this point of the single top-to-bottom pass: an ID registered by
// content later in the document is not yet known and is reported as
// ref_to_missing.
type refBehavior struct{}

func (refBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	id, _ := policies.ToPlaintext(d.Content, ctx)
	if id == "" {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDRefToEmpty, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_ref requires a non-empty ID",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	if _, registered := ctx.IDs[id]; !registered {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDRefToMissing, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_ref target \"" + id + "\" was never registered",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	p.Write(`<a href="#`+engine.EscapeAttribute(id)+`">`, ast.LangHTML)
	p.Write(engine.EscapeText(id), ast.LangHTML)
	p.Write("</a>", ast.LangHTML)
	return status.OK
}

func (refBehavior) Display() engine.Display   { return engine.DisplayInline }
func (refBehavior) Category() engine.Category { return engine.CategoryPureHTML }
