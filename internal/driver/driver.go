// Package driver wires together the parser and the engine into a
// single Compile entry point, mirroring the original implementation's
// generate_document (original_source/include/cowel/document_generation.hpp):
// parse the source, consume it under the standard policy stack into
// std.body, resolve section references, and compose the final output.
package driver

import (
	"github.com/eisenwave/cowel-sub001/internal/builtins"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/paragraph"
	"github.com/eisenwave/cowel-sub001/internal/parse"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/section"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// Services bundles the collaborators a single Compile call injects
// into its Context (spec.md §6). A nil FileLoader leaves cowel_include
// unable to load files, surfaced as an ordinary diagnostic rather than
// a panic. Highlighter and Bibliography are stored on the Context, but
// no builtin directive reads them.
type Services struct {
	Highlighter  engine.Highlighter
	Bibliography engine.Bibliography
	FileLoader   engine.FileLoader
	Logger       diag.Logger
}

// Compile renders source to HTML. The returned status is the
// worst-case outcome across directive evaluation and section
// reference resolution; Error means at least one error sentinel or
// unresolved reference appears in the (still fully rendered) output.
func Compile(source string, services Services) (string, status.Status) {
	ctx := engine.NewContext(source)
	if services.Logger != nil {
		ctx.Logger = services.Logger
	}
	ctx.Highlighter = services.Highlighter
	ctx.Bibliography = services.Bibliography
	ctx.FileLoader = services.FileLoader

	ctx.PushResolver(builtins.BuiltinResolver{})
	ctx.PushResolver(builtins.AliasResolver{Ctx: ctx})
	ctx.PushResolver(builtins.MacroResolver{Ctx: ctx})

	nodes := parse.Parse(source)

	sink := policies.NewSectionSink(ctx)
	html := policies.NewHTML(sink)
	root := paragraph.New(html, false)

	result := engine.ConsumeSequenceGreedy(nodes, root, ctx)
	root.Leave()

	// A document that never writes to std.html (the common case, since
	// no builtin directive targets it yet) is just its resolved body;
	// one that does is treated as the full page and std.body/std.head
	// reach it only through whatever markers the document itself wrote.
	if _, wroteHTMLSection := ctx.Sections.Text(engine.SectionHTML); wroteHTMLSection {
		resolved, refStatus := section.Resolve(ctx.Sections, engine.SectionHTML, ctx.Logger)
		return resolved, status.Concat(result, refStatus)
	}

	resolved, refStatus := section.Resolve(ctx.Sections, engine.SectionBody, ctx.Logger)
	return resolved, status.Concat(result, refStatus)
}
