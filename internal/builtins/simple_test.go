package builtins

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
)

func TestWrapBehaviorWrapsContentInFixedTag(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: "b", behavior: wrapBehavior{tag: "b", display: 0, category: 0}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: "b", Content: []ast.Node{textNode("bold")}}, ctx)
	if got := bodyText(ctx); got != "<b>bold</b>" {
		t.Errorf("got %q", got)
	}
}

func TestVoidBehaviorIgnoresContent(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: "hr", behavior: voidBehavior{tag: "hr"}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{Name: "hr", Content: []ast.Node{textNode("ignored")}}, ctx)
	if got := bodyText(ctx); got != "<hr>" {
		t.Errorf("got %q", got)
	}
}

// fuzz property: any input containing only balanced comment directives
// produces empty output.
func TestCommentBehaviorProducesNoOutput(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: "comment", behavior: commentBehavior{}})
	h := newRig(ctx)

	h.Consume(&ast.Directive{
		Name: "comment",
		Content: []ast.Node{
			textNode("dropped"),
			&ast.Directive{Name: "comment", Content: []ast.Node{textNode("nested, also dropped")}},
		},
	}, ctx)
	if got := bodyText(ctx); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}
