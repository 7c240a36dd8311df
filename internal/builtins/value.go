package builtins

import (
	"strconv"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/policies"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// primitiveText renders a Primitive literal back to the text an author
// would have written for it. Used for bareword arguments in a name or
// selector position, which parse.parseValue yields as ValuePrimitive
// rather than the {...} ValueContent shape (spec.md §3's three Value
// shapes; an unbraced argument like `pos` or `keyword` is a primitive,
// not content).
func primitiveText(p ast.Primitive) string {
	switch p.Kind {
	case ast.PrimString:
		return p.String
	case ast.PrimInt:
		return strconv.FormatInt(p.Int, 10)
	case ast.PrimFloat:
		return strconv.FormatFloat(p.Float, 'g', -1, 64)
	case ast.PrimBool:
		if p.Bool {
			return "true"
		}
		return "false"
	case ast.PrimNull:
		return "null"
	case ast.PrimUnit:
		return "unit"
	case ast.PrimInfinity:
		return "infinity"
	}
	return ""
}

// valueText extracts v's plain-text spelling for a name or selector
// position: a bareword primitive renders as its literal token, and a
// {...} value renders through the plaintext policy, which may itself
// evaluate directives within v.Content.
func valueText(v ast.Value, ctx *engine.Context) (string, status.Status) {
	if v.Kind == ast.ValuePrimitive {
		return primitiveText(v.Primitive), status.OK
	}
	return policies.ToPlaintext(v.Content, ctx)
}

// valueSoleText extracts v's literal text spelling without evaluating
// any directive: a bareword primitive renders as its literal token,
// and a {...} value must hold exactly one Text node.
func valueSoleText(v ast.Value) (string, bool) {
	if v.Kind == ast.ValuePrimitive {
		return primitiveText(v.Primitive), true
	}
	return soleText(v.Content)
}

// valueAsContent renders v as a content sequence suitable for
// substitution into the output: a {...} value is used as-is, and a
// bareword primitive is wrapped in a single synthetic Generated node
// holding its literal spelling, so that forwarding an unbraced
// argument (e.g. cowel_put substituting a caller's positional
// argument) produces the same text as forwarding a braced one would.
func valueAsContent(v ast.Value) []ast.Node {
	if v.Kind == ast.ValuePrimitive {
		return []ast.Node{&ast.Generated{Value: primitiveText(v.Primitive), Language: ast.LangText}}
	}
	return v.Content
}
