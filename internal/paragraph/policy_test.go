package paragraph

import (
	"strings"
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// recordingParent is a minimal ContentPolicy that just records
// whatever text reaches it, for asserting on paragraph tag placement.
type recordingParent struct {
	sb strings.Builder
}

func (r *recordingParent) NativeLanguage() ast.Language { return ast.LangHTML }
func (r *recordingParent) Write(chars string, lang ast.Language) bool {
	r.sb.WriteString(chars)
	return true
}
func (r *recordingParent) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return status.OK
}

func newCtx() *engine.Context { return engine.NewContext("") }

func TestWriteOpensParagraphOnFirstText(t *testing.T) {
	parent := &recordingParent{}
	p := New(parent, false)

	p.Write("hello", ast.LangText)
	if parent.sb.String() != "<p>hello" {
		t.Errorf("got %q", parent.sb.String())
	}
}

func TestBlankLineClosesParagraph(t *testing.T) {
	parent := &recordingParent{}
	p := New(parent, false)

	p.Write("hello", ast.LangText)
	p.Write("\n\n", ast.LangText)
	if parent.sb.String() != "<p>hello</p>" {
		t.Errorf("got %q", parent.sb.String())
	}
	if p.Inside() {
		t.Error("expected to be outside a paragraph after the blank line")
	}
}

func TestNewParagraphOpensAfterBlankLine(t *testing.T) {
	parent := &recordingParent{}
	p := New(parent, false)

	p.Write("a", ast.LangText)
	p.Write("\n\n", ast.LangText)
	p.Write("b", ast.LangText)
	if parent.sb.String() != "<p>a</p><p>b" {
		t.Errorf("got %q", parent.sb.String())
	}
}

func TestInitiallyInsideStartsWithoutOpeningTag(t *testing.T) {
	parent := &recordingParent{}
	p := New(parent, true)

	p.Write("intro", ast.LangText)
	if parent.sb.String() != "intro" {
		t.Errorf("got %q, expected no <p> since the policy started inside one", parent.sb.String())
	}
}

func TestLeaveIsIdempotent(t *testing.T) {
	parent := &recordingParent{}
	p := New(parent, false)

	p.Write("x", ast.LangText)
	p.Leave()
	p.Leave()
	if parent.sb.String() != "<p>x</p>" {
		t.Errorf("got %q", parent.sb.String())
	}
}

type stubBehavior struct {
	display  engine.Display
	category engine.Category
	output   string
}

func (b stubBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	p.Write(b.output, ast.LangHTML)
	return status.OK
}
func (b stubBehavior) Display() engine.Display   { return b.display }
func (b stubBehavior) Category() engine.Category { return b.category }

type singleResolver struct {
	name string
	b    engine.Behavior
}

func (r singleResolver) Resolve(name string) (engine.Behavior, bool) {
	if name == r.name {
		return r.b, true
	}
	return nil, false
}

func TestBlockDirectiveClosesSurroundingParagraph(t *testing.T) {
	parent := &recordingParent{}
	ctx := newCtx()
	ctx.PushResolver(singleResolver{name: "hr", b: stubBehavior{display: engine.DisplayBlock, output: "<hr>"}})
	p := New(parent, false)

	p.Write("text", ast.LangText)
	p.Consume(&ast.Directive{Name: "hr"}, ctx)
	if parent.sb.String() != "<p>text</p><hr>" {
		t.Errorf("got %q", parent.sb.String())
	}
	if p.Inside() {
		t.Error("expected to be outside after a block directive")
	}
}

func TestInlineDirectiveOpensParagraph(t *testing.T) {
	parent := &recordingParent{}
	ctx := newCtx()
	ctx.PushResolver(singleResolver{name: "b", b: stubBehavior{display: engine.DisplayInline, output: "<b>x</b>"}})
	p := New(parent, false)

	p.Consume(&ast.Directive{Name: "b"}, ctx)
	if parent.sb.String() != "<p><b>x</b>" {
		t.Errorf("got %q", parent.sb.String())
	}
	if !p.Inside() {
		t.Error("expected to be inside after an inline directive")
	}
}

func TestMetaDirectiveLeavesStateUnchanged(t *testing.T) {
	parent := &recordingParent{}
	ctx := newCtx()
	ctx.PushResolver(singleResolver{name: "id", b: stubBehavior{display: engine.DisplayNone, output: ""}})
	p := New(parent, false)

	p.Consume(&ast.Directive{Name: "id"}, ctx)
	if p.Inside() {
		t.Error("a meta directive must not open a paragraph")
	}
}

func TestForceEnterLeaveInheritOverrideDisplay(t *testing.T) {
	parent := &recordingParent{}
	ctx := newCtx()
	p := New(parent, false)

	p.Consume(&ast.Directive{Name: DirectiveEnter}, ctx)
	if !p.Inside() {
		t.Error("cowel_paragraph_enter must force the inside state")
	}

	p.Consume(&ast.Directive{Name: DirectiveLeave}, ctx)
	if p.Inside() {
		t.Error("cowel_paragraph_leave must force the outside state")
	}

	p.inside = true
	p.Consume(&ast.Directive{Name: DirectiveInherit}, ctx)
	if !p.Inside() {
		t.Error("cowel_paragraph_inherit must not change the current state")
	}
}

func TestUnresolvedDirectiveRendersSentinelAndOpensParagraph(t *testing.T) {
	parent := &recordingParent{}
	ctx := newCtx()
	p := New(parent, false)

	st := p.Consume(&ast.Directive{Name: "nope"}, ctx)
	if st != status.Error {
		t.Errorf("status = %v, want Error", st)
	}
	if !strings.Contains(parent.sb.String(), "<error->") {
		t.Errorf("expected an error sentinel, got %q", parent.sb.String())
	}
	if !p.Inside() {
		t.Error("expected the sentinel to count as inline content")
	}
}
