package highlight

import "github.com/alecthomas/chroma/v2"

// shortNames maps chroma token types to the short class names this
// implementation emits as a directive's data-h attribute. Most entries
// are chroma's own HTML-formatter abbreviations (e.g. LiteralString ->
// "s"); Keyword is "kw" rather than chroma's own "k", matching
// spec.md §8 scenario 6's literal expected output.
// cowel_highlight_as can target these same short names directly
// (DESIGN.md's "cowel_highlight_as long-to-short name mapping" decision).
var shortNames = map[chroma.TokenType]string{
	chroma.Keyword:               "kw",
	chroma.KeywordConstant:       "kc",
	chroma.KeywordDeclaration:    "kd",
	chroma.KeywordNamespace:      "kn",
	chroma.KeywordPseudo:         "kp",
	chroma.KeywordReserved:       "kr",
	chroma.KeywordType:           "kt",
	chroma.Name:                 "n",
	chroma.NameAttribute:        "na",
	chroma.NameBuiltin:          "nb",
	chroma.NameClass:            "nc",
	chroma.NameConstant:         "no",
	chroma.NameDecorator:        "nd",
	chroma.NameFunction:         "nf",
	chroma.NameNamespace:        "ni",
	chroma.NameTag:              "nt",
	chroma.NameVariable:         "nv",
	chroma.LiteralString:        "s",
	chroma.LiteralStringDoc:     "sd",
	chroma.LiteralStringEscape:  "se",
	chroma.LiteralStringInterpol: "si",
	chroma.LiteralNumber:        "m",
	chroma.LiteralNumberFloat:   "mf",
	chroma.LiteralNumberInteger: "mi",
	chroma.Operator:             "o",
	chroma.OperatorWord:         "ow",
	chroma.Punctuation:          "p",
	chroma.Comment:              "c",
	chroma.CommentSingle:        "c1",
	chroma.CommentMultiline:     "cm",
	chroma.CommentPreproc:       "cp",
	chroma.CommentSpecial:       "cs",
	chroma.GenericDeleted:       "gd",
	chroma.GenericEmph:          "ge",
	chroma.GenericError:         "gr",
	chroma.GenericHeading:       "gh",
	chroma.GenericInserted:      "gi",
	chroma.GenericOutput:        "go",
	chroma.GenericPrompt:        "gp",
	chroma.GenericStrong:        "gs",
	chroma.GenericSubheading:    "gu",
	chroma.GenericTraceback:     "gt",
	chroma.TextWhitespace:       "w",
	chroma.Error:                "err",
	chroma.Text:                 "",
}

// shortName resolves tt to its short class name, falling back to
// progressively coarser categories the way chroma's own formatters do
// when an exact subtype isn't in the table, and finally "x" for a
// type this table has no opinion on at all.
func shortName(tt chroma.TokenType) string {
	if name, ok := shortNames[tt]; ok {
		return name
	}
	if name, ok := shortNames[tt.SubCategory()]; ok {
		return name
	}
	if name, ok := shortNames[tt.Category()]; ok {
		return name
	}
	return "x"
}

// longNames maps cowel_highlight_as's long-form names to chroma token
// types. Spec.md §9 leaves this mapping to the injected highlighter
// service rather than the core spec; this is the substitute for
// ulight's own long-name table, named here since DESIGN.md's "chroma
// short names used directly" decision covers both directions.
var longNames = map[string]chroma.TokenType{
	"keyword":     chroma.Keyword,
	"identifier":  chroma.Name,
	"builtin":     chroma.NameBuiltin,
	"class":       chroma.NameClass,
	"function":    chroma.NameFunction,
	"namespace":   chroma.NameNamespace,
	"tag":         chroma.NameTag,
	"variable":    chroma.NameVariable,
	"string":      chroma.LiteralString,
	"number":      chroma.LiteralNumber,
	"operator":    chroma.Operator,
	"punctuation": chroma.Punctuation,
	"comment":     chroma.Comment,
	"error":       chroma.Error,
	"text":        chroma.Text,
}

// ShortNameForLongName resolves a cowel_highlight_as long-form name
// (e.g. "keyword") to the short data-h value this implementation
// emits for it (e.g. "kw"). Used directly by the builtins package.
func ShortNameForLongName(longName string) (string, bool) {
	tt, ok := longNames[longName]
	if !ok {
		return "", false
	}
	return shortName(tt), true
}
