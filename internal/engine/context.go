// Package engine holds the interfaces and mutable per-run state that
// every content policy and directive behavior is built against:
// Context, ContentPolicy, Behavior, Resolver, and the dispatch/consume
// helpers that tie them together (spec.md §2, §4.1-§4.3).
//
// ContentPolicy and Behavior live in the same package specifically to
// avoid the cycle the original C++ design has (policies dispatch to
// behaviors, behaviors construct nested policies): both are interfaces
// here, and concrete implementations in sibling packages (policies,
// builtins) depend on engine, never the reverse.
package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eisenwave/cowel-sub001/internal/ast"
	"github.com/eisenwave/cowel-sub001/internal/diag"
)

// Frame is the (arguments, content) pair of an active macro invocation,
// consulted by cowel_put (spec.md §3 "Invocation frame", §4.4).
type Frame struct {
	Arguments []ast.Argument
	Content   []ast.Node
}

// Highlighter is the injected syntax-highlighting service (spec.md §6).
type Highlighter interface {
	// SupportedLanguages lists the language hints this highlighter
	// recognizes, used for typo suggestions.
	SupportedLanguages() []string
	// Tokenize highlights code under the given language hint. Spans
	// must cover all of code contiguously with no gaps.
	Tokenize(code, language string) ([]HighlightSpan, error)
}

// HighlightSpan is one highlighted token: a byte range of the input
// and the short token-type name to render in data-h.
type HighlightSpan struct {
	Begin, End int
	ShortName  string
}

// DocumentInfo is bibliography metadata for a single cited work.
type DocumentInfo struct {
	ID, Title, Date, Publisher, Link, LongLink, IssueLink, Author string
}

// Bibliography is the injected citation-store service (spec.md §6).
type Bibliography interface {
	Find(id string) (DocumentInfo, bool)
	Insert(info DocumentInfo) bool
}

// FileEntry is a successfully loaded file, per spec.md §6.
type FileEntry struct {
	ID     string
	Source string
	Name   string
}

// FileLoader is the injected file-loading service (spec.md §6).
type FileLoader interface {
	Load(path string) (FileEntry, error)
}

// Sections is the ordered map of named output buffers described in
// spec.md §3/§4.7: insertion order is preserved for reference
// stability, and there is always a current section.
type Sections struct {
	order   []string
	buffers map[string]*strings.Builder
	current string
}

// NewSections creates a Sections map with a single root section current.
func NewSections(root string) *Sections {
	s := &Sections{buffers: make(map[string]*strings.Builder)}
	s.ensure(root)
	s.current = root
	return s
}

func (s *Sections) ensure(name string) *strings.Builder {
	if b, ok := s.buffers[name]; ok {
		return b
	}
	b := &strings.Builder{}
	s.buffers[name] = b
	s.order = append(s.order, name)
	return b
}

// Current returns the name of the section writes currently target.
func (s *Sections) Current() string { return s.current }

// GoTo switches the current section and returns a restore function the
// caller must invoke on exit, implementing the "scoped go_to" helper
// from spec.md §4.7.
func (s *Sections) GoTo(name string) (restore func()) {
	s.ensure(name)
	prev := s.current
	s.current = name
	return func() { s.current = prev }
}

// WriteString appends to the current section.
func (s *Sections) WriteString(text string) {
	s.ensure(s.current).WriteString(text)
}

// WriteTo appends to a named section regardless of the current cursor.
func (s *Sections) WriteTo(name, text string) {
	s.ensure(name).WriteString(text)
}

// Text returns the accumulated text of a section, or "" if it was
// never written to.
func (s *Sections) Text(name string) (string, bool) {
	b, ok := s.buffers[name]
	if !ok {
		return "", false
	}
	return b.String(), true
}

// Names returns section names in first-write order.
func (s *Sections) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Well-known section names, per spec.md §4.7.
const (
	SectionBib     = "std.bib"
	SectionTOC     = "std.toc"
	SectionHead    = "std.head"
	SectionBody    = "std.body"
	SectionHTML    = "std.html"
)

// Context is the per-run mutable state threaded through every
// evaluation step: sections, variables, macros, the ID table, the
// resolver stack, the active macro frame stack, and injected services
// (spec.md §3 "Context invariants").
//
// The spec's C++ design splits allocation into persistent/transient
// arenas; this is a deliberate simplification (documented in
// DESIGN.md) since Go's garbage collector already gives every field
// below the lifetime it needs without manual arena bookkeeping.
type Context struct {
	Sections  *Sections
	Variables map[string]string
	Macros    map[string]*ast.Directive
	// Aliases binds an additional name directly to a resolved Behavior
	// (cowel_alias, spec.md §4.4), as opposed to Macros which binds a
	// name to a captured AST body.
	Aliases map[string]Behavior
	IDs     map[string]struct{}

	resolvers []Resolver
	frames    []Frame

	Logger       diag.Logger
	Highlighter  Highlighter
	Bibliography Bibliography
	FileLoader   FileLoader

	// RunID correlates every diagnostic and log line produced by one
	// compilation, surfaced in the CLI's structured output.
	RunID uuid.UUID

	// Source is the full text of the document being compiled, used by
	// the To-Source and Unprocessed policies to recover verbatim spans.
	Source string
}

// NewContext creates a Context with a root section and an ignorant
// logger; callers attach resolvers with PushResolver and override
// services as needed before evaluation begins.
func NewContext(source string) *Context {
	return &Context{
		Sections:  NewSections(SectionBody),
		Variables: make(map[string]string),
		Macros:    make(map[string]*ast.Directive),
		Aliases:   make(map[string]Behavior),
		IDs:       make(map[string]struct{}),
		Logger:    diag.Ignorant{},
		RunID:     uuid.New(),
		Source:    source,
	}
}

// RegisterID inserts id into the ID table; duplicate inserts are
// no-ops, and the return value reports whether the ID was newly added.
func (c *Context) RegisterID(id string) bool {
	if _, exists := c.IDs[id]; exists {
		return false
	}
	c.IDs[id] = struct{}{}
	return true
}

// Log emits a diagnostic if the context's logger accepts its severity.
func (c *Context) Log(d diag.Diagnostic) {
	if c.Logger == nil {
		return
	}
	if !c.Logger.CanLog(d.Severity) {
		return
	}
	c.Logger.Log(d)
}

// PushResolver adds a resolver to the top of the stack; later pushes
// shadow earlier ones during lookup (spec.md §4.2).
func (c *Context) PushResolver(r Resolver) {
	c.resolvers = append(c.resolvers, r)
}

// Resolvers returns the stack, top-most (most recently pushed) first.
func (c *Context) Resolvers() []Resolver {
	out := make([]Resolver, len(c.resolvers))
	for i, r := range c.resolvers {
		out[i] = c.resolvers[len(c.resolvers)-1-i]
	}
	return out
}

// PushFrame opens a new macro invocation frame, consulted by cowel_put
// until the matching PopFrame.
func (c *Context) PushFrame(f Frame) {
	c.frames = append(c.frames, f)
}

// PopFrame closes the most recently pushed frame.
func (c *Context) PopFrame() {
	if len(c.frames) == 0 {
		return
	}
	c.frames = c.frames[:len(c.frames)-1]
}

// TopFrame returns the active macro frame, if any.
func (c *Context) TopFrame() (Frame, bool) {
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	return c.frames[len(c.frames)-1], true
}
