package builtins

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
)

func newCtx() *engine.Context { return engine.NewContext("") }

func textNode(v string) *ast.Text { return &ast.Text{Value: v} }

func content(nodes ...ast.Node) ast.Value {
	return ast.Value{Kind: ast.ValueContent, Content: nodes}
}

// bareword builds the ValuePrimitive shape parse.parseValue produces
// for an unbraced argument token, e.g. the "pos" in `(pos)` or the
// "Positional" in `(Positional)`.
func bareword(s string) ast.Argument {
	return ast.Argument{Kind: ast.ArgPositional, Value: ast.Value{
		Kind:      ast.ValuePrimitive,
		Primitive: ast.Primitive{Kind: ast.PrimString, String: s},
	}}
}

func positional(nodes ...ast.Node) ast.Argument {
	return ast.Argument{Kind: ast.ArgPositional, Value: content(nodes...)}
}

func named(name string, nodes ...ast.Node) ast.Argument {
	return ast.Argument{Kind: ast.ArgNamed, Name: name, Value: content(nodes...)}
}

func newRig(ctx *engine.Context) *policies.HTML {
	return policies.NewHTML(policies.NewSectionSink(ctx))
}

func bodyText(ctx *engine.Context) string {
	got, _ := ctx.Sections.Text(engine.SectionBody)
	return got
}

// fixedResolver resolves exactly one name to a fixed Behavior, for
// tests that exercise a single builtin in isolation.
type fixedResolver struct {
	name     string
	behavior engine.Behavior
}

func (f fixedResolver) Resolve(name string) (engine.Behavior, bool) {
	if name == f.name {
		return f.behavior, true
	}
	return nil, false
}

// scenario: \cowel_macro(try){\cowel_put(else=Failure){0}}\try(Success) \try
// expects "Success Failure". The put selector lives in its content
// ({0}), not its arguments; "else=Failure" is the only argument.
func TestMacroDefineAndPutWithElseFallback(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(MacroResolver{Ctx: ctx})
	ctx.PushResolver(BuiltinResolver{})
	h := newRig(ctx)

	def := &ast.Directive{
		Name:      NameMacro,
		Arguments: []ast.Argument{positional(&ast.Directive{Name: "try"})},
		Content: []ast.Node{
			&ast.Directive{
				Name:      NamePut,
				Arguments: []ast.Argument{named("else", textNode("Failure"))},
				Content:   []ast.Node{textNode("0")},
			},
		},
	}
	if st := h.Consume(def, ctx); !st.IsOK() {
		t.Fatalf("define status = %v", st)
	}

	h.Consume(&ast.Directive{Name: "try", Arguments: []ast.Argument{positional(textNode("Success"))}}, ctx)
	h.Consume(textNode(" "), ctx)
	h.Consume(&ast.Directive{Name: "try"}, ctx)

	if got := bodyText(ctx); got != "Success Failure" {
		t.Errorf("got %q, want %q", got, "Success Failure")
	}
}

// scenario 3 (spec.md §8): \cowel_macro(pos){\cowel_put{0}}\pos(Positional)
// exercises the bareword pattern name and a bareword caller argument
// together, the exact shapes parse.parseValue produces for unbraced
// tokens (neither positional() nor named() above ever construct this).
func TestMacroDefineWithBarewordPatternAndPositionalPut(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(MacroResolver{Ctx: ctx})
	ctx.PushResolver(BuiltinResolver{})
	h := newRig(ctx)

	def := &ast.Directive{
		Name:      NameMacro,
		Arguments: []ast.Argument{bareword("pos")},
		Content:   []ast.Node{&ast.Directive{Name: NamePut, Content: []ast.Node{textNode("0")}}},
	}
	if st := h.Consume(def, ctx); !st.IsOK() {
		t.Fatalf("define status = %v", st)
	}
	if _, ok := ctx.Macros["pos"]; !ok {
		t.Fatal("expected macro \"pos\" to be registered")
	}

	h.Consume(&ast.Directive{Name: "pos", Arguments: []ast.Argument{bareword("Positional")}}, ctx)
	if got := bodyText(ctx); got != "Positional" {
		t.Errorf("got %q, want %q", got, "Positional")
	}
}

func TestMacroRedefinitionWarns(t *testing.T) {
	ctx := newCtx()
	log := diag.NewCollecting(diag.SeverityWarn)
	ctx.Logger = log
	ctx.PushResolver(BuiltinResolver{})
	h := newRig(ctx)

	mkDef := func() *ast.Directive {
		return &ast.Directive{
			Name:      NameMacro,
			Arguments: []ast.Argument{positional(&ast.Directive{Name: "x"})},
		}
	}
	h.Consume(mkDef(), ctx)
	h.Consume(mkDef(), ctx)

	found := false
	for _, d := range log.Entries {
		if d.ID == diag.IDDefRedefinition {
			found = true
		}
	}
	if !found {
		t.Error("expected a redefinition diagnostic on the second cowel_macro(x) definition")
	}
}

func TestPutWithNoArgumentEmitsWholeFrameContent(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(BuiltinResolver{})
	ctx.PushFrame(engine.Frame{Content: []ast.Node{textNode("whole body")}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: NamePut}, ctx)
	if got := bodyText(ctx); got != "whole body" {
		t.Errorf("got %q", got)
	}
}

func TestPutNamedKeySelectsNamedArgument(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(BuiltinResolver{})
	ctx.PushFrame(engine.Frame{Arguments: []ast.Argument{named("greeting", textNode("hi"))}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: NamePut, Content: []ast.Node{textNode("greeting")}}, ctx)
	if got := bodyText(ctx); got != "hi" {
		t.Errorf("got %q", got)
	}
}

// TestPutPositionalIndexForwardsBarewordArgument exercises the shape
// parse.parseValue produces for an unbraced caller argument: its
// Value.Content is always nil, so the forwarded text must come from
// the primitive itself, not from Content.
func TestPutPositionalIndexForwardsBarewordArgument(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(BuiltinResolver{})
	ctx.PushFrame(engine.Frame{Arguments: []ast.Argument{bareword("Positional")}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: NamePut, Content: []ast.Node{textNode("0")}}, ctx)
	if got := bodyText(ctx); got != "Positional" {
		t.Errorf("got %q", got)
	}
}

// scenario: cowel_put used outside of any macro frame is put_outside.
func TestPutOutsideAnyFrameIsAnError(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(BuiltinResolver{})
	log := diag.NewCollecting(diag.SeverityError)
	ctx.Logger = log
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: NamePut}, ctx)
	found := false
	for _, d := range log.Entries {
		if d.ID == diag.IDPutOutside {
			found = true
		}
	}
	if !found {
		t.Error("expected a put_outside diagnostic")
	}
}
