package paragraph

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// The three directives that force a paragraph-state transition
// regardless of the invoked behavior's Display (spec.md §4.5).
const (
	DirectiveEnter   = "cowel_paragraph_enter"
	DirectiveLeave   = "cowel_paragraph_leave"
	DirectiveInherit = "cowel_paragraph_inherit"
)

// Policy implements the Paragraph-Split content policy of spec.md
// §4.5: it tracks whether output is currently inside an open <p>
// element and opens/closes one around inline and block content,
// forwarding everything else to Parent unchanged.
type Policy struct {
	Parent  engine.ContentPolicy
	scanner Scanner
	inside  bool
}

// New wraps parent in a Paragraph-Split policy. initiallyInside lets a
// block container that must already be inside a paragraph when its
// content starts (e.g. a note block whose intro requires a leading
// "<p><intro-> ") request that starting state (spec.md §4.5).
func New(parent engine.ContentPolicy, initiallyInside bool) *Policy {
	return &Policy{Parent: parent, inside: initiallyInside}
}

func (p *Policy) NativeLanguage() ast.Language { return p.Parent.NativeLanguage() }

// Write feeds chars to the blank-line scanner, closing an open
// paragraph on a detected boundary, then opens one (if needed) before
// forwarding non-blank content. A chunk that is entirely the blank
// line itself is swallowed: blank lines are a transition, never output.
func (p *Policy) Write(chars string, lang ast.Language) bool {
	if p.scanner.Feed(chars) {
		p.closeParagraph()
		if isAllBlankRun(chars) {
			return true
		}
	}
	if chars == "" {
		return true
	}
	p.openParagraph()
	return p.Parent.Write(chars, lang)
}

// Consume dispatches a node per spec.md §4.5: text/escape/generated
// content is written through Write (participating in paragraph
// detection above), comments are dropped, and directives transition
// the paragraph state according to their Display before running.
func (p *Policy) Consume(n ast.Node, ctx *engine.Context) status.Status {
	d, ok := n.(*ast.Directive)
	if !ok {
		return p.consumeNonDirective(n, ctx)
	}

	switch d.Name {
	case DirectiveEnter:
		p.openParagraph()
		return status.OK
	case DirectiveLeave:
		p.closeParagraph()
		return status.OK
	case DirectiveInherit:
		// No-op: the paragraph state carries through exactly as the
		// surrounding content left it.
		return status.OK
	}

	behavior, found, suggestion := engine.Dispatch(ctx, d.Name)
	if !found {
		msg := "directive \"" + d.Name + "\" did not resolve to a known directive"
		if suggestion != "" {
			msg += "; did you mean \"" + suggestion + "\"?"
		}
		ctx.Log(diag.Diagnostic{
			ID:       diag.IDDirectiveLookupUnresolved,
			Severity: diag.SeverityError,
			Span:     d.SourceSpan,
			Message:  msg,
		})
		p.openParagraph()
		return engine.TryGenerateError(p, d, ctx)
	}

	switch behavior.Display() {
	case engine.DisplayBlock:
		p.closeParagraph()
		// Applied against Parent so the block's own writes do not reopen
		// a paragraph: the state stays outside.
		return behavior.Apply(p.Parent, d, ctx)
	case engine.DisplayInline:
		p.openParagraph()
	case engine.DisplayNone, engine.DisplayMacro:
		// Meta content and macro expansion leave the paragraph state
		// untouched: a macro's body is evaluated through this same
		// policy, so its own content still participates in paragraph
		// detection as if it were spliced in directly.
	}
	return behavior.Apply(p, d, ctx)
}

func (p *Policy) consumeNonDirective(n ast.Node, ctx *engine.Context) status.Status {
	switch node := n.(type) {
	case *ast.Text:
		p.Write(node.Value, ast.LangText)
	case *ast.Escape:
		p.Write(node.Expansion, ast.LangText)
	case *ast.Comment:
		// Dropped; no state change.
	case *ast.Generated:
		p.Write(node.Value, node.Language)
	}
	return status.OK
}

func (p *Policy) openParagraph() {
	if p.inside {
		return
	}
	p.Parent.Write("<p>", ast.LangHTML)
	p.inside = true
}

// closeParagraph closes the currently open paragraph, if any; calling
// it when already outside a paragraph is a no-op (spec.md §4.5's
// terminal "leave" must be idempotent).
func (p *Policy) closeParagraph() {
	if !p.inside {
		return
	}
	p.Parent.Write("</p>", ast.LangHTML)
	p.inside = false
}

// Leave idempotently closes an open paragraph; the driver calls this
// once at the end of a document or block container so a trailing
// paragraph is never left unclosed.
func (p *Policy) Leave() {
	p.closeParagraph()
}

// Inside reports whether a paragraph is currently open.
func (p *Policy) Inside() bool { return p.inside }
