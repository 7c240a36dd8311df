package builtins

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// wrapBehavior wraps its content in a fixed HTML tag, the shape of
// the bulk of the original implementation's per-tag builtins
// (HTML_Element_Behavior instantiated once per well-known tag name,
// per original_source/src/main/cpp/builtin_directive_set.cpp).
type wrapBehavior struct {
	tag      string
	display  engine.Display
	category engine.Category
}

func (b wrapBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	p.Write("<"+b.tag+">", ast.LangHTML)
	s := engine.ConsumeSequenceGreedy(d.Content, p, ctx)
	p.Write("</"+b.tag+">", ast.LangHTML)
	return s
}

func (b wrapBehavior) Display() engine.Display   { return b.display }
func (b wrapBehavior) Category() engine.Category { return b.category }

// voidBehavior writes a fixed self-closing tag and ignores any content.
type voidBehavior struct {
	tag     string
	display engine.Display
}

func (b voidBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	p.Write("<"+b.tag+">", ast.LangHTML)
	return status.OK
}

func (b voidBehavior) Display() engine.Display { return b.display }
func (voidBehavior) Category() engine.Category { return engine.CategoryPureHTML }

// commentBehavior implements the comment directive: its content is
// neither evaluated nor emitted (spec.md §8's fuzz property "any input
// containing only balanced comment directives produces empty output").
type commentBehavior struct{}

func (commentBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	return status.OK
}

func (commentBehavior) Display() engine.Display   { return engine.DisplayNone }
func (commentBehavior) Category() engine.Category { return engine.CategoryMeta }

// inlineTags and blockTags are the curated subset of the original
// implementation's tag-name builtins this module wires up directly;
// cowel_html (html_element.go) covers every other element generically.
var inlineTags = map[string]string{
	"b":      "b",
	"i":      "i",
	"em":     "em",
	"strong": "strong",
	"code":   "code",
	"small":  "small",
	"sub":    "sub",
	"sup":    "sup",
	"mark":   "mark",
	"q":      "q",
	"s":      "s",
	"u":      "u",
}

var blockTags = map[string]string{
	"p":          "p",
	"blockquote": "blockquote",
	"pre":        "pre",
	"code-block": "pre",
}
