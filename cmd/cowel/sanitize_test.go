package main

import (
	"strings"
	"testing"
)

func TestSanitizeUntrustedStripsScripts(t *testing.T) {
	out := sanitizeUntrusted(`<p>hi</p><script>alert(1)</script>`)
	if strings.Contains(out, "<script") {
		t.Errorf("expected <script> to be stripped, got %q", out)
	}
	if !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("expected ordinary markup to survive, got %q", out)
	}
}

func TestSanitizeUntrustedKeepsCommonFormatting(t *testing.T) {
	out := sanitizeUntrusted(`<h1 id="intro"><a class="para" href="#intro"></a>Intro</h1>`)
	if !strings.Contains(out, "Intro") {
		t.Errorf("expected heading text to survive, got %q", out)
	}
}
