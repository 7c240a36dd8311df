package section

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// Store is the minimal section-map surface the resolution pass needs;
// engine.Sections implements it.
type Store interface {
	Text(name string) (string, bool)
}

// Resolve runs the reference-resolution pass of spec.md §4.7 over
// root's text: every marker is replaced by its referenced section's
// (recursively resolved) text, missing references and cycles are
// reported through log, and the marker's payload is emitted as nothing
// in both failure cases.
func Resolve(store Store, root string, log diag.Logger) (string, status.Status) {
	text, ok := store.Text(root)
	if !ok {
		return "", status.OK
	}
	visited := map[string]struct{}{root: {}}
	return resolveInto(store, text, visited, log)
}

func resolveInto(store Store, text string, visited map[string]struct{}, log diag.Logger) (string, status.Status) {
	var sb strings.Builder
	result := status.OK

	for i := 0; i < len(text); {
		if name, width, ok := decodeMarkerAt(text, i); ok {
			i += width
			s := resolveReference(store, name, visited, log)
			result = status.Concat(result, s.status)
			sb.WriteString(s.text)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(text[i])
			i++
			continue
		}
		sb.WriteRune(r)
		i += size
	}
	return sb.String(), result
}

type referenceResult struct {
	text   string
	status status.Status
}

// resolveReference resolves a single reference to name, logging and
// skipping the payload on a missing section or a cycle, and restoring
// the visited set on return so independent sibling references to the
// same section are not flagged as cycles (spec.md §4.7, point 4).
func resolveReference(store Store, name string, visited map[string]struct{}, log diag.Logger) referenceResult {
	if _, seen := visited[name]; seen {
		logDiag(log, diag.IDSectionRefCircular, fmt.Sprintf("circular section reference to %q", name))
		return referenceResult{status: status.Error}
	}
	childText, ok := store.Text(name)
	if !ok {
		logDiag(log, diag.IDSectionRefNotFound, fmt.Sprintf("section %q not found", name))
		return referenceResult{status: status.Error}
	}

	visited[name] = struct{}{}
	resolved, s := resolveInto(store, childText, visited, log)
	delete(visited, name)

	return referenceResult{text: resolved, status: s}
}

func logDiag(log diag.Logger, id, msg string) {
	if log == nil {
		return
	}
	log.Log(diag.Diagnostic{ID: id, Severity: diag.SeverityError, Message: msg})
}
