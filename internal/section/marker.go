// Package section implements the cross-reference marker encoding and
// the late section-reference resolution pass described in spec.md §4.7:
// named output buffers plus a scoped, cycle-detecting splice pass that
// runs once the whole document has been consumed.
package section

import (
	"strings"
	"unicode/utf8"
)

// markerBase is the first code point of the Supplementary Private Use
// Area-A, per spec.md §4.7. A marker for a section name of length n
// encodes the code point markerBase+n, followed by the name's n bytes.
const markerBase rune = 0xF0000

// markerMax is the last valid PUA-A code point (U+FFFFD), bounding how
// long an encodable section name can be.
const markerMax rune = 0xFFFFD

// maxNameLen is the longest section name EncodeMarker can represent.
const maxNameLen = int(markerMax - markerBase)

// EncodeMarker returns the section-reference marker for name: the
// UTF-8 encoding of U+F0000+len(name) followed immediately by name's
// bytes. Section names are expected to be plain ASCII identifiers, so
// byte length and rune length coincide.
func EncodeMarker(name string) string {
	if len(name) > maxNameLen {
		// Callers are expected to use short, well-known section names;
		// this defends against a pathological name overflowing the
		// encodable range rather than producing a corrupt marker.
		name = name[:maxNameLen]
	}
	cp := markerBase + rune(len(name))
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	var sb strings.Builder
	sb.Grow(n + len(name))
	sb.Write(buf[:n])
	sb.WriteString(name)
	return sb.String()
}

// isMarkerLeadByte is the O(1) pre-check from spec.md §4.7: every
// 4-byte UTF-8 sequence encoding a PUA-A code point in our range
// starts with 0xF3, a byte value that never appears as the first byte
// of an ASCII character or of any other code point cowel emits.
func isMarkerLeadByte(b byte) bool { return b == 0xF3 }

// decodeMarkerAt attempts to decode a marker starting at byte offset i
// of s. On success it returns the section name and the number of bytes
// the whole marker (lead rune + name) occupies.
func decodeMarkerAt(s string, i int) (name string, width int, ok bool) {
	if i >= len(s) || !isMarkerLeadByte(s[i]) {
		return "", 0, false
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError || r < markerBase || r > markerMax {
		return "", 0, false
	}
	nameLen := int(r - markerBase)
	start := i + size
	if start+nameLen > len(s) {
		return "", 0, false
	}
	return s[start : start+nameLen], size + nameLen, true
}

// ContainsMarker reports whether s contains any section-reference
// marker, used by tests asserting the universal invariant that final
// output never contains a PUA-A byte (spec.md §8).
func ContainsMarker(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, _, ok := decodeMarkerAt(s, i); ok {
			return true
		}
	}
	return false
}
