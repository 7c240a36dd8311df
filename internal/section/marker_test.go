package section

import (
	"strings"
	"testing"
)

func TestMarkerRoundTrip(t *testing.T) {
	cases := []string{"", "a", "std.body", strings.Repeat("x", 64)}
	for _, name := range cases {
		marker := EncodeMarker(name)
		got, width, ok := decodeMarkerAt(marker, 0)
		if !ok {
			t.Fatalf("decodeMarkerAt(%q) failed to decode its own marker", name)
		}
		if got != name {
			t.Errorf("round trip name = %q, want %q", got, name)
		}
		if width != len(marker) {
			t.Errorf("width = %d, want %d", width, len(marker))
		}
	}
}

func TestMarkerEmbeddedInText(t *testing.T) {
	marker := EncodeMarker("std.toc")
	text := "before " + marker + " after"
	idx := strings.Index(text, "\xf3")
	if idx < 0 {
		t.Fatalf("expected lead byte in text")
	}
	name, width, ok := decodeMarkerAt(text, idx)
	if !ok || name != "std.toc" {
		t.Fatalf("decodeMarkerAt in-place = %q, %v, want std.toc, true", name, ok)
	}
	if text[idx+width:] != " after" {
		t.Errorf("tail after marker = %q, want %q", text[idx+width:], " after")
	}
}

func TestDecodeMarkerAtRejectsOrdinaryText(t *testing.T) {
	text := "plain ASCII text with no markers at all"
	for i := range text {
		if _, _, ok := decodeMarkerAt(text, i); ok {
			t.Fatalf("decodeMarkerAt(%d) spuriously matched in plain text", i)
		}
	}
	if ContainsMarker(text) {
		t.Errorf("ContainsMarker should be false for plain text")
	}
}

func TestDecodeMarkerAtTruncated(t *testing.T) {
	marker := EncodeMarker("std.body")
	truncated := marker[:len(marker)-2]
	if _, _, ok := decodeMarkerAt(truncated, 0); ok {
		t.Errorf("decodeMarkerAt should reject a truncated marker")
	}
}

func TestContainsMarkerFindsEmbedded(t *testing.T) {
	text := "<p>" + EncodeMarker("std.bib") + "</p>"
	if !ContainsMarker(text) {
		t.Errorf("ContainsMarker should find an embedded marker")
	}
	if ContainsMarker("<p></p>") {
		t.Errorf("ContainsMarker should be false without a marker")
	}
}

func TestEncodeMarkerTruncatesOverlongName(t *testing.T) {
	name := strings.Repeat("n", maxNameLen+10)
	marker := EncodeMarker(name)
	got, _, ok := decodeMarkerAt(marker, 0)
	if !ok {
		t.Fatalf("decodeMarkerAt failed on truncated-name marker")
	}
	if len(got) != maxNameLen {
		t.Errorf("truncated name length = %d, want %d", len(got), maxNameLen)
	}
}
