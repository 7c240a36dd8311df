package builtins

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// fuzz property: for any chain of aliases A -> B -> C -> builtin,
// invoking A produces the same output as invoking builtin directly.
func TestAliasChainForwardsToOriginalBuiltin(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(AliasResolver{Ctx: ctx})
	ctx.PushResolver(BuiltinResolver{})
	ctx.PushResolver(fixedResolver{name: "real", behavior: wrapBehavior{tag: "b", display: 0, category: 0}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{
		Name:      NameAlias,
		Arguments: []ast.Argument{positional(textNode("c"))},
		Content:   []ast.Node{&ast.Directive{Name: "real"}},
	}, ctx)
	h.Consume(&ast.Directive{
		Name:      NameAlias,
		Arguments: []ast.Argument{positional(textNode("b"))},
		Content:   []ast.Node{&ast.Directive{Name: "c"}},
	}, ctx)
	h.Consume(&ast.Directive{
		Name:      NameAlias,
		Arguments: []ast.Argument{positional(textNode("a"))},
		Content:   []ast.Node{&ast.Directive{Name: "b"}},
	}, ctx)

	h.Consume(&ast.Directive{Name: "a", Content: []ast.Node{textNode("x")}}, ctx)
	h.Consume(&ast.Directive{Name: "real", Content: []ast.Node{textNode("x")}}, ctx)

	got := bodyText(ctx)
	want := "<b>x</b><b>x</b>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAliasDuplicateNameIsFatal(t *testing.T) {
	ctx := newCtx()
	log := diag.NewCollecting(diag.SeverityFatal)
	ctx.Logger = log
	ctx.PushResolver(BuiltinResolver{})
	ctx.PushResolver(fixedResolver{name: "real", behavior: wrapBehavior{tag: "b"}})
	h := newRig(ctx)

	def := func() *ast.Directive {
		return &ast.Directive{
			Name:      NameAlias,
			Arguments: []ast.Argument{positional(textNode("dup"))},
			Content:   []ast.Node{&ast.Directive{Name: "real"}},
		}
	}
	h.Consume(def(), ctx)
	st := h.Consume(def(), ctx)
	if st != status.Fatal {
		t.Errorf("status = %v, want Fatal on duplicate alias", st)
	}
	found := false
	for _, d := range log.Entries {
		if d.ID == diag.IDAliasDuplicate {
			found = true
		}
	}
	if !found {
		t.Error("expected an alias_duplicate diagnostic")
	}
}

func TestAliasToUnresolvableTargetIsFatal(t *testing.T) {
	ctx := newCtx()
	log := diag.NewCollecting(diag.SeverityFatal)
	ctx.Logger = log
	ctx.PushResolver(BuiltinResolver{})
	h := newRig(ctx)

	d := &ast.Directive{
		Name:      NameAlias,
		Arguments: []ast.Argument{positional(textNode("broken"))},
		Content:   []ast.Node{&ast.Directive{Name: "does_not_exist"}},
	}
	st := h.Consume(d, ctx)
	if st != status.Fatal {
		t.Errorf("status = %v, want Fatal on an unresolvable target", st)
	}
	found := false
	for _, d := range log.Entries {
		if d.ID == diag.IDAliasNameInvalid {
			found = true
		}
	}
	if !found {
		t.Error("expected an alias_name_invalid diagnostic")
	}
}
