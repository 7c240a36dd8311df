package main

import "github.com/microcosm-cc/bluemonday"

// untrustedPolicy is applied to compiled output when --untrusted is
// set: cowel_html_raw/\script\style content is written verbatim by
// design (spec.md §4.1's HTML-Literal policy), which is exactly the
// escape hatch an attacker-controlled document would abuse. Rather
// than threading a second, sanitizing content policy through the
// driver for one flag, the CLI runs the whole rendered document
// through bluemonday's UGC policy as a final pass -- safe HTML authored
// through ordinary directives (headings, formatting, sections) already
// falls within UGCPolicy's allowed set and passes through unchanged.
var untrustedPolicy = bluemonday.UGCPolicy()

func sanitizeUntrusted(html string) string {
	return untrustedPolicy.Sanitize(html)
}
