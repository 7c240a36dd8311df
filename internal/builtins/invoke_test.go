package builtins

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
)

func TestInvokeRewritesToNamedDirective(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: NameInvoke, behavior: invokeBehavior{}})
	ctx.PushResolver(fixedResolver{name: "b", behavior: wrapBehavior{tag: "b", display: 0, category: 0}})
	h := newRig(ctx)

	d := &ast.Directive{
		Name:      NameInvoke,
		Arguments: []ast.Argument{positional(textNode("b")), named("class", textNode("x"))},
		Content:   []ast.Node{textNode("hi")},
	}
	h.Consume(d, ctx)
	if got := bodyText(ctx); got != "<b>hi</b>" {
		t.Errorf("got %q", got)
	}
}

func TestInvokeRejectsInvalidName(t *testing.T) {
	ctx := newCtx()
	log := diag.NewCollecting(diag.SeverityError)
	ctx.Logger = log
	ctx.PushResolver(fixedResolver{name: NameInvoke, behavior: invokeBehavior{}})
	h := newRig(ctx)

	d := &ast.Directive{
		Name:      NameInvoke,
		Arguments: []ast.Argument{positional(textNode("1bad"))},
	}
	h.Consume(d, ctx)
	found := false
	for _, diagEntry := range log.Entries {
		if diagEntry.ID == diag.IDInvokeNameInvalid {
			found = true
		}
	}
	if !found {
		t.Error("expected an invoke_name_invalid diagnostic")
	}
}
