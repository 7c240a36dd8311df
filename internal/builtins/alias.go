package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// AliasResolver resolves any name bound by cowel_alias, consulting
// ctx.Aliases dynamically so an alias defined partway through a
// document is visible to later references, the same as MacroResolver.
type AliasResolver struct {
	Ctx *engine.Context
}

func (a AliasResolver) Resolve(name string) (engine.Behavior, bool) {
	b, ok := a.Ctx.Aliases[name]
	return b, ok
}

func (a AliasResolver) Names() []string {
	names := make([]string, 0, len(a.Ctx.Aliases))
	for n := range a.Ctx.Aliases {
		names = append(names, n)
	}
	return names
}

// aliasBehavior forwards every call under the new name straight to
// the target behavior resolved at alias-creation time, so a chain of
// aliases A -> B -> C -> builtin all produce exactly what invoking the
// builtin directly would (spec.md §8's alias-chain fuzz property).
type aliasBehavior struct {
	target engine.Behavior
}

func (a aliasBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	return a.target.Apply(p, d, ctx)
}
func (a aliasBehavior) Display() engine.Display   { return a.target.Display() }
func (a aliasBehavior) Category() engine.Category { return a.target.Category() }

// aliasDefineBehavior implements cowel_alias (spec.md §4.4): the first
// positional argument names the new alias, and the invocation's
// content must hold a single directive invocation identifying the
// target. Both a duplicate alias name and an alias to an unresolvable
// target are fatal.
type aliasDefineBehavior struct{}

func (aliasDefineBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	nameArg, ok := firstPositional(d.Arguments)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDAliasNameInvalid, Severity: diag.SeverityFatal, Span: d.SourceSpan,
			Message: "cowel_alias requires a new name as its first positional argument",
		})
		return status.Fatal
	}
	newName, _ := valueText(nameArg.Value, ctx)
	if newName == "" {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDAliasNameInvalid, Severity: diag.SeverityFatal, Span: d.SourceSpan,
			Message: "cowel_alias's new name must not be blank",
		})
		return status.Fatal
	}

	target, ok := soleDirective(d.Content)
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDAliasNameInvalid, Severity: diag.SeverityFatal, Span: d.SourceSpan,
			Message: "cowel_alias's content must hold a single target directive invocation",
		})
		return status.Fatal
	}

	if _, exists := ctx.Aliases[newName]; exists {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDAliasDuplicate, Severity: diag.SeverityFatal, Span: d.SourceSpan,
			Message: "alias \"" + newName + "\" is already defined",
		})
		return status.Fatal
	}
	targetBehavior, resolvable, _ := engine.Dispatch(ctx, target.Name)
	if !resolvable {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDAliasNameInvalid, Severity: diag.SeverityFatal, Span: d.SourceSpan,
			Message: "cowel_alias target \"" + target.Name + "\" does not resolve to a known directive",
		})
		return status.Fatal
	}

	ctx.Aliases[newName] = aliasBehavior{target: targetBehavior}
	return status.OK
}

func (aliasDefineBehavior) Display() engine.Display   { return engine.DisplayNone }
func (aliasDefineBehavior) Category() engine.Category { return engine.CategoryMeta }
