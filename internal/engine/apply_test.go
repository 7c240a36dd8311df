package engine

import (
	"strings"
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

type echoBehavior struct{}

func (echoBehavior) Apply(p ContentPolicy, d *ast.Directive, ctx *Context) status.Status {
	p.Write("ok", ast.LangHTML)
	return status.OK
}
func (echoBehavior) Display() Display   { return DisplayInline }
func (echoBehavior) Category() Category { return CategoryFormatting }

func TestApplyDirectiveResolved(t *testing.T) {
	ctx := NewContext("")
	ctx.PushResolver(mapResolver{"echo": echoBehavior{}})
	p := &recordingPolicy{}

	d := &ast.Directive{Name: "echo"}
	st := ApplyDirective(p, d, ctx)
	if st != status.OK {
		t.Errorf("status = %v, want OK", st)
	}
	if p.sb.String() != "ok" {
		t.Errorf("written = %q, want ok", p.sb.String())
	}
}

func TestApplyDirectiveUnresolvedLogsAndRendersSentinel(t *testing.T) {
	source := `\nope{}`
	ctx := NewContext(source)
	ctx.PushResolver(mapResolver{"highlight": echoBehavior{}})
	log := diag.NewCollecting(diag.SeverityWarn)
	ctx.Logger = log

	d := &ast.Directive{Name: "nope", SourceSpan: diag.Span{Begin: 0, End: len(source)}}
	p := &recordingPolicy{}

	st := ApplyDirective(p, d, ctx)
	if st != status.Error {
		t.Errorf("status = %v, want Error", st)
	}
	if !strings.Contains(p.sb.String(), "<error->") {
		t.Errorf("expected error sentinel, got %q", p.sb.String())
	}
	if len(log.Entries) != 1 || log.Entries[0].ID != diag.IDDirectiveLookupUnresolved {
		t.Errorf("diagnostics = %v, want one directive_lookup_unresolved", log.Entries)
	}
}
