// Package highlight implements the Syntax-Highlight content policy of
// spec.md §4.6 (dual-buffer span table, finalization into tokenized
// HTML) and a chroma-backed engine.Highlighter service.
package highlight

import (
	"strings"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

type spanOrigin int

const (
	originHTML spanOrigin = iota
	originHighlight
)

// span records one contiguous chunk's origin buffer and byte range
// within it, in write order, so finalization can replay the two
// buffers interleaved the way they were written (spec.md §4.6).
type span struct {
	origin     spanOrigin
	begin, end int
}

// Policy is the Syntax-Highlight content policy: HTML writes pass
// through to an internal HTML buffer unchanged, text writes accumulate
// in a highlight buffer that is tokenized at finalization time.
type Policy struct {
	Highlighter engine.Highlighter
	Language    string

	html  strings.Builder
	hl    strings.Builder
	spans []span
}

// New creates a Policy that will tokenize accumulated text against
// language using highlighter once finalized with DumpHTMLTo.
func New(highlighter engine.Highlighter, language string) *Policy {
	return &Policy{Highlighter: highlighter, Language: language}
}

func (p *Policy) NativeLanguage() ast.Language { return ast.LangHTML }

// Write appends chars to the buffer matching lang, recording a span
// entry so the chunk is replayed in order at finalization.
func (p *Policy) Write(chars string, lang ast.Language) bool {
	switch lang {
	case ast.LangHTML:
		begin := p.html.Len()
		p.html.WriteString(chars)
		p.spans = append(p.spans, span{originHTML, begin, p.html.Len()})
		return true
	case ast.LangText:
		begin := p.hl.Len()
		p.hl.WriteString(chars)
		p.spans = append(p.spans, span{originHighlight, begin, p.hl.Len()})
		return true
	default:
		return false
	}
}

// WritePhantom implements policies.PhantomSink: text reaches the
// highlight buffer (so it participates in tokenization context) but
// gets no span entry, so it never appears in the finalized output
// (spec.md §4.6's Phantom description).
func (p *Policy) WritePhantom(text string) {
	p.hl.WriteString(text)
}

// Consume dispatches a node the same way every other content policy
// does: text/escape/generated content through Write, comments
// dropped, directives through the shared dispatch helper.
func (p *Policy) Consume(n ast.Node, ctx *engine.Context) status.Status {
	switch node := n.(type) {
	case *ast.Text:
		p.Write(node.Value, ast.LangText)
		return status.OK
	case *ast.Escape:
		p.Write(node.Expansion, ast.LangText)
		return status.OK
	case *ast.Comment:
		return status.OK
	case *ast.Directive:
		return engine.ApplyDirective(p, node, ctx)
	case *ast.Generated:
		p.Write(node.Value, node.Language)
		return status.OK
	default:
		return status.OK
	}
}

// DumpHTMLTo finalizes the buffered content: it tokenizes the
// accumulated highlight buffer against Language, then walks the span
// table in order, writing HTML spans verbatim and wrapping each
// highlight span's intersected tokens in
// `<h- data-h="SHORT_NAME">...</h->` (spec.md §4.6, point 3).
//
// On tokenization failure it logs a warning and returns the plaintext
// rendering unchanged instead (point 2).
func (p *Policy) DumpHTMLTo(ctx *engine.Context) (string, status.Status) {
	code := p.hl.String()
	var tokens []engine.HighlightSpan
	if code != "" {
		t, err := p.Highlighter.Tokenize(code, p.Language)
		if err != nil {
			ctx.Log(diag.Diagnostic{
				ID:       diag.IDHighlightError,
				Severity: diag.SeverityWarn,
				Message:  "syntax highlighting for language \"" + p.Language + "\" failed: " + err.Error(),
			})
			return p.renderPlain(), status.Error
		}
		tokens = t
	}

	var out strings.Builder
	tokenIdx := 0
	for _, sp := range p.spans {
		switch sp.origin {
		case originHTML:
			out.WriteString(p.html.String()[sp.begin:sp.end])
		case originHighlight:
			tokenIdx = writeHighlightSpan(&out, tokens, tokenIdx, code, sp.begin, sp.end)
		}
	}
	return out.String(), status.OK
}

// writeHighlightSpan writes the portion of tokens intersecting
// [begin, end) (code's byte range for this span), returning the
// token index to resume from for the next span. tokens and the spans
// are both processed left-to-right, so a single shared cursor is
// enough even when a token straddles two highlight spans separated by
// an interleaved HTML span or a Phantom gap.
func writeHighlightSpan(out *strings.Builder, tokens []engine.HighlightSpan, tokenIdx int, code string, begin, end int) int {
	for tokenIdx < len(tokens) {
		t := tokens[tokenIdx]
		if t.End <= begin {
			tokenIdx++
			continue
		}
		if t.Begin >= end {
			break
		}
		b, e := maxInt(t.Begin, begin), minInt(t.End, end)
		writeToken(out, t.ShortName, code[b:e])
		if t.End <= end {
			tokenIdx++
			continue
		}
		break
	}
	return tokenIdx
}

func writeToken(out *strings.Builder, shortName, text string) {
	out.WriteString(`<h- data-h="`)
	out.WriteString(engine.EscapeAttribute(shortName))
	out.WriteString(`">`)
	out.WriteString(engine.EscapeText(text))
	out.WriteString("</h->")
}

// renderPlain dumps the buffered content with highlight spans escaped
// as plain text instead of tokenized, used on a Tokenize failure.
func (p *Policy) renderPlain() string {
	var out strings.Builder
	code := p.hl.String()
	htmlStr := p.html.String()
	for _, sp := range p.spans {
		switch sp.origin {
		case originHTML:
			out.WriteString(htmlStr[sp.begin:sp.end])
		case originHighlight:
			out.WriteString(engine.EscapeText(code[sp.begin:sp.end]))
		}
	}
	return out.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
