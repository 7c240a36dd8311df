package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eisenwave/cowel-sub001/internal/diag"
)

var (
	styleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleWarn  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	styleID    = lipgloss.NewStyle().Faint(true)
)

// renderDiagnostics formats entries for terminal display, one line
// each, severity-colored with lipgloss the way --pretty output is
// meant to read at a glance. Plain (non-pretty) output is left to the
// caller, which just prints diag.Diagnostic.String().
func renderDiagnostics(entries []diag.Diagnostic) string {
	var b strings.Builder
	for _, d := range entries {
		style := styleInfo
		switch {
		case d.Severity >= diag.SeverityError:
			style = styleError
		case d.Severity >= diag.SeverityWarn:
			style = styleWarn
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			style.Render(strings.ToUpper(d.Severity.String())),
			d.Message,
			styleID.Render("("+d.ID+" @ "+d.Span.String()+")"),
		)
	}
	return b.String()
}
