package engine

import "strings"

// EscapeText escapes the three bytes that are meaningful inside HTML
// text content, per the original implementation's html_writer.hpp.
// Used by the HTML policy before forwarding text to its parent sink.
func EscapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeAttribute escapes a string for embedding inside a
// double-quoted HTML attribute value (id=, data-h=, ...), per the
// original implementation's html_writer.hpp.
func EscapeAttribute(s string) string {
	if !strings.ContainsAny(s, "&\"<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
