package engine

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// TryGenerateError renders the `<error->...</error->` sentinel for a
// directive that failed to resolve or evaluate (spec.md §7), writing
// its original source verbatim inside the sentinel tags. It always
// writes as HTML; a policy whose native language isn't HTML forwards
// or refuses the write according to its own Write rules, same as any
// other HTML content.
func TryGenerateError(p ContentPolicy, d *ast.Directive, ctx *Context) status.Status {
	source := ast.Source(d, ctx.Source)
	p.Write("<error->", ast.LangHTML)
	p.Write(EscapeText(source), ast.LangHTML)
	p.Write("</error->", ast.LangHTML)
	return status.Error
}
