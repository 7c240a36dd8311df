// Package builtins implements the built-in directive behaviors of
// spec.md §4.4 and §4.7: macro definition/invocation/put, aliasing,
// directive rewriting, sections and cross-references, and the small
// utility directives used in §8's scenario tests.
package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

const (
	NameMacro  = "cowel_macro"
	NamePut    = "cowel_put"
	NameAlias  = "cowel_alias"
	NameInvoke = "cowel_invoke"
)

// MacroResolver resolves any name that has been defined with
// cowel_macro against ctx's live macro table, so a macro defined
// partway through a document is visible to every later reference
// (spec.md §4.4).
type MacroResolver struct {
	Ctx *engine.Context
}

func (m MacroResolver) Resolve(name string) (engine.Behavior, bool) {
	def, ok := m.Ctx.Macros[name]
	if !ok {
		return nil, false
	}
	return macroBehavior{def: def}, true
}

// Names lists every currently defined macro name, for fuzzy-match
// suggestions on a lookup miss (spec.md §4.2).
func (m MacroResolver) Names() []string {
	names := make([]string, 0, len(m.Ctx.Macros))
	for n := range m.Ctx.Macros {
		names = append(names, n)
	}
	return names
}

// macroBehavior evaluates a user-defined macro's captured body: a new
// frame is pushed with the caller's arguments and content, the body
// runs under that frame, and the frame is popped on return (spec.md
// §4.4 "Invocation").
type macroBehavior struct {
	def *ast.Directive
}

func (b macroBehavior) Apply(p engine.ContentPolicy, call *ast.Directive, ctx *engine.Context) status.Status {
	ctx.PushFrame(engine.Frame{Arguments: call.Arguments, Content: call.Content})
	defer ctx.PopFrame()
	return engine.ConsumeSequenceGreedy(b.def.Content, p, ctx)
}

func (macroBehavior) Display() engine.Display   { return engine.DisplayMacro }
func (macroBehavior) Category() engine.Category { return engine.CategoryMacro }

// defineBehavior implements cowel_macro: it reads the pattern
// directive from the first positional argument and registers a macro
// under the pattern's name, capturing the invocation's own content as
// the macro body (spec.md §4.4 "Definition").
type defineBehavior struct{}

func (defineBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	pattern, ok := firstPositional(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDDefNoPattern, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_macro requires a pattern directive as its first positional argument",
		})
		return engine.TryGenerateError(p, d, ctx)
	}
	name, ok := patternName(pattern.Value)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDDefPatternNoDirective, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_macro's pattern argument must be a bareword name or contain a single directive invocation",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	if _, exists := ctx.Macros[name]; exists {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDDefRedefinition, Severity: diag.SeverityWarn, Span: d.SourceSpan,
			Message: "redefining macro \"" + name + "\"; the latest definition wins",
		})
	}
	ctx.Macros[name] = &ast.Directive{
		Name:       name,
		Content:    d.Content,
		SourceSpan: d.SourceSpan,
	}
	return status.OK
}

// patternName extracts the macro name from cowel_macro's pattern
// argument: a bareword primitive is taken as the name directly, and a
// {...} value must hold a single directive invocation, whose name is
// used (its own arguments and content are documentation only and are
// discarded, per the pattern's role in spec.md §4.4 "Definition").
func patternName(v ast.Value) (string, bool) {
	if v.Kind == ast.ValuePrimitive {
		return primitiveText(v.Primitive), true
	}
	d, ok := soleDirective(v.Content)
	if !ok {
		return "", false
	}
	return d.Name, true
}

func (defineBehavior) Display() engine.Display   { return engine.DisplayNone }
func (defineBehavior) Category() engine.Category { return engine.CategoryMeta }

// firstPositional returns the first positional argument in args, if any.
func firstPositional(args []ast.Argument) (ast.Argument, bool) {
	for _, a := range args {
		if a.Kind == ast.ArgPositional {
			return a, true
		}
	}
	return ast.Argument{}, false
}

// namedArgument returns the named argument called name, if any.
func namedArgument(args []ast.Argument, name string) (ast.Argument, bool) {
	for _, a := range args {
		if a.Kind == ast.ArgNamed && a.Name == name {
			return a, true
		}
	}
	return ast.Argument{}, false
}

// soleDirective returns the single *ast.Directive in nodes, if nodes
// contains exactly one node and it is a directive.
func soleDirective(nodes []ast.Node) (*ast.Directive, bool) {
	if len(nodes) != 1 {
		return nil, false
	}
	d, ok := nodes[0].(*ast.Directive)
	return d, ok
}
