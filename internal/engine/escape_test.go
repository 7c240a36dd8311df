package engine

import "testing"

func TestEscapeText(t *testing.T) {
	cases := map[string]string{
		"plain":       "plain",
		"a&b":         "a&amp;b",
		"<tag>":       "&lt;tag&gt;",
		`"quoted"`:    `"quoted"`,
		"a&b<c>d&e":   "a&amp;b&lt;c&gt;d&amp;e",
	}
	for in, want := range cases {
		if got := EscapeText(in); got != want {
			t.Errorf("EscapeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeAttribute(t *testing.T) {
	cases := map[string]string{
		"plain":    "plain",
		`"quoted"`: "&quot;quoted&quot;",
		"a&b":      "a&amp;b",
		"<x>":      "&lt;x&gt;",
	}
	for in, want := range cases {
		if got := EscapeAttribute(in); got != want {
			t.Errorf("EscapeAttribute(%q) = %q, want %q", in, got, want)
		}
	}
}
