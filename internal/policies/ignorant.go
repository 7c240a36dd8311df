package policies

import (
	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/status"
)

// Ignorant drops everything and always succeeds (spec.md §4.1),
// mirroring diag.Ignorant for the logger.
type Ignorant struct{}

func (Ignorant) NativeLanguage() ast.Language                        { return ast.LangNone }
func (Ignorant) Write(chars string, lang ast.Language) bool          { return false }
func (Ignorant) Consume(n ast.Node, ctx *engine.Context) status.Status { return status.OK }
