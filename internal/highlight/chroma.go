package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/eisenwave/cowel-sub001/internal/engine"
)

// ChromaHighlighter implements engine.Highlighter on top of chroma's
// lexer registry (spec.md §6's injected Syntax_Highlighter service).
type ChromaHighlighter struct{}

// NewChromaHighlighter returns the default highlighter service.
func NewChromaHighlighter() ChromaHighlighter { return ChromaHighlighter{} }

// supportedLanguages is a curated subset of chroma's lexer aliases
// covering the languages a markup document is realistically expected
// to highlight; used only to build typo suggestions.
var supportedLanguages = []string{
	"go", "c", "cpp", "python", "rust", "javascript", "typescript",
	"json", "yaml", "toml", "html", "css", "bash", "sql", "java",
	"markdown", "diff", "plaintext",
}

func (ChromaHighlighter) SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// Tokenize looks up a lexer for language and tokenizes code, returning
// one HighlightSpan per token with byte offsets into code.
func (ChromaHighlighter) Tokenize(code, language string) ([]engine.HighlightSpan, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("unknown highlighting language %q", language)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenizing as %q: %w", language, err)
	}

	spans := make([]engine.HighlightSpan, 0, 64)
	offset := 0
	for _, tok := range it.Tokens() {
		begin := offset
		end := begin + len(tok.Value)
		offset = end
		if begin == end {
			continue
		}
		spans = append(spans, engine.HighlightSpan{Begin: begin, End: end, ShortName: shortName(tok.Type)})
	}
	return spans, nil
}
