package builtins

import (
	"strconv"
	"strings"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// headingBehavior implements \h1 through \h6 (spec.md §8, scenario 5):
// content becomes a heading with a synthesized id and a leading
// paragraph-anchor link pointing at that id.
type headingBehavior struct {
	level int
}

func (b headingBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	text, _ := policies.ToPlaintext(d.Content, ctx)
	id := uniqueID(ctx, slugify(text))

	tag := "h" + strconv.Itoa(b.level)
	p.Write("<"+tag+" id="+id+"><a class=para href=#"+id+"></a>", ast.LangHTML)
	s := engine.ConsumeSequenceGreedy(d.Content, p, ctx)
	p.Write("</"+tag+">", ast.LangHTML)
	return s
}

func (headingBehavior) Display() engine.Display   { return engine.DisplayBlock }
func (headingBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// slugify lower-cases text and collapses every run of characters that
// aren't letters or digits into a single hyphen, trimming the ends.
func slugify(text string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueID registers slug (or slug-2, slug-3, ... on collision) in
// ctx's ID table and returns whichever name was actually registered.
func uniqueID(ctx *engine.Context, slug string) string {
	if slug == "" {
		slug = "section"
	}
	if ctx.RegisterID(slug) {
		return slug
	}
	for n := 2; ; n++ {
		candidate := slug + "-" + strconv.Itoa(n)
		if ctx.RegisterID(candidate) {
			return candidate
		}
	}
}
