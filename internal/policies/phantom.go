package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// PhantomSink receives text that should influence a syntax-highlight
// tokenizer's context without appearing in its output (spec.md §4.1,
// §4.6's dual-buffer mechanics). highlight.SpanBuffer implements this.
type PhantomSink interface {
	WritePhantom(text string)
}

// Phantom forwards text only to a highlighter's invisible-input
// buffer; every other write is a no-op (spec.md §4.1).
type Phantom struct {
	Sink PhantomSink
}

func NewPhantom(sink PhantomSink) *Phantom { return &Phantom{Sink: sink} }

func (p *Phantom) NativeLanguage() ast.Language { return ast.LangText }

func (p *Phantom) Write(chars string, lang ast.Language) bool {
	if lang != ast.LangText {
		return false
	}
	p.Sink.WritePhantom(chars)
	return true
}

func (p *Phantom) Consume(n ast.Node, ctx *engine.Context) status.Status {
	return consumeAsHTML(p, n, ctx)
}
