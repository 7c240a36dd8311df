package builtins

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

func TestHTMLRawForwardsContentUnescaped(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: NameHTMLRaw, behavior: htmlRawBehavior{}})
	h := newRig(ctx)

	d := &ast.Directive{Name: NameHTMLRaw, Content: []ast.Node{textNode("<b>&</b>")}}
	h.Consume(d, ctx)

	if got, want := bodyText(ctx), "<b>&</b>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScriptAndStyleWrapContentVerbatim(t *testing.T) {
	ctx := newCtx()
	ctx.PushResolver(fixedResolver{name: "script", behavior: rawTextElementBehavior{tag: "script"}})
	h := newRig(ctx)

	d := &ast.Directive{Name: "script", Content: []ast.Node{textNode("let x = 3 < 5;")}}
	st := h.Consume(d, ctx)

	if st != status.OK {
		t.Errorf("status = %v, want OK", st)
	}
	if got, want := bodyText(ctx), "<script>let x = 3 < 5;</script>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScriptRejectsLiteralClosingTag(t *testing.T) {
	ctx := newCtx()
	log := diag.NewCollecting(diag.SeverityError)
	ctx.Logger = log
	ctx.PushResolver(fixedResolver{name: "script", behavior: rawTextElementBehavior{tag: "script"}})
	h := newRig(ctx)

	d := &ast.Directive{Name: "script", Content: []ast.Node{textNode("</script>")}}
	st := h.Consume(d, ctx)

	if st != status.Error {
		t.Errorf("status = %v, want Error", st)
	}
	found := false
	for _, e := range log.Entries {
		if e.ID == diag.IDRawTextClosing {
			found = true
		}
	}
	if !found {
		t.Error("expected a raw_text_closing diagnostic")
	}
}

func TestContainsClosingTagIsCaseInsensitive(t *testing.T) {
	if !containsClosingTag("foo </STYLE> bar", "style") {
		t.Error("expected a case-insensitive match")
	}
	if containsClosingTag("no closing tag here", "style") {
		t.Error("expected no match")
	}
}
