package builtins

import (
	"strconv"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// putBehavior implements cowel_put (spec.md §4.4): it only evaluates
// under the topmost macro frame, emitting the frame's whole content,
// one of the caller's positional arguments by index, or one of the
// caller's named arguments by key, each with an `else=` fallback. The
// selector itself is written in braces (`\cowel_put{0}`), not parens;
// the `else=` fallback alone lives in the parenthesized arguments
// (spec.md §8 scenarios 3 and 4).
type putBehavior struct{}

func (putBehavior) Apply(p engine.ContentPolicy, d *ast.Directive, ctx *engine.Context) status.Status {
	frame, ok := ctx.TopFrame()
	if !ok {
		ctx.Log(diag.Diagnostic{
			ID: diag.IDPutOutside, Severity: diag.SeverityError, Span: d.SourceSpan,
			Message: "cowel_put used outside of any macro frame",
		})
		return engine.TryGenerateError(p, d, ctx)
	}

	if len(d.Content) == 0 {
		return engine.ConsumeSequenceGreedy(frame.Content, p, ctx)
	}

	var (
		content []ast.Node
		found   bool
	)
	if i, isIndex := selectorIndex(d.Content); isIndex {
		content, found = positionalContentAt(frame.Arguments, i)
	} else {
		key, _ := policies.ToPlaintext(d.Content, ctx)
		content, found = namedContentFor(frame.Arguments, key)
	}
	if found {
		return engine.ConsumeSequenceGreedy(content, p, ctx)
	}

	if elseArg, ok := namedArgument(d.Arguments, "else"); ok {
		return engine.ConsumeSequenceGreedy(valueAsContent(elseArg.Value), p, ctx)
	}
	return status.OK
}

// selectorIndex reports whether nodes is cowel_put's positional-index
// selector shape: a sole text token parsing as a base-10 integer.
func selectorIndex(nodes []ast.Node) (int, bool) {
	text, ok := soleText(nodes)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (putBehavior) Display() engine.Display   { return engine.DisplayInline }
func (putBehavior) Category() engine.Category { return engine.CategoryFormatting }

// positionalContentAt returns the content of the i-th positional
// argument among args, in invocation order.
func positionalContentAt(args []ast.Argument, i int) ([]ast.Node, bool) {
	if i < 0 {
		return nil, false
	}
	n := 0
	for _, a := range args {
		if a.Kind != ast.ArgPositional {
			continue
		}
		if n == i {
			return valueAsContent(a.Value), true
		}
		n++
	}
	return nil, false
}

// namedContentFor returns the content of the named argument called
// key among args, if any.
func namedContentFor(args []ast.Argument, key string) ([]ast.Node, bool) {
	for _, a := range args {
		if a.Kind == ast.ArgNamed && a.Name == key {
			return valueAsContent(a.Value), true
		}
	}
	return nil, false
}
