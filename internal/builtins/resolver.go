package builtins

import "github.com/eisenwave/cowel-sub001/internal/engine"

// registry is the fixed name-to-behavior table for every builtin
// directive that doesn't need live access to Context.Macros or
// Context.Aliases. Those two (cowel_macro invocation, cowel_alias
// invocation) are resolved by the separate MacroResolver and
// AliasResolver, which the driver pushes onto the resolver stack
// alongside BuiltinResolver.
var registry = buildRegistry()

func buildRegistry() map[string]engine.Behavior {
	m := map[string]engine.Behavior{
		NameMacro:         defineBehavior{},
		NamePut:           putBehavior{},
		NameAlias:         aliasDefineBehavior{},
		NameInvoke:        invokeBehavior{},
		NameCharByEntity:  charByEntityBehavior{},
		NameHighlightAs:   highlightAsBehavior{},
		NameMakeBib:       sectionMarkerBehavior{section: engine.SectionBib},
		NameMakeContents:  sectionMarkerBehavior{section: engine.SectionTOC},
		NameRef:           refBehavior{},
		NameHTMLElement:   htmlElementBehavior{},
		NameInclude:       includeBehavior{},
		NameHTMLRaw:       htmlRawBehavior{},
		"comment":         commentBehavior{},
		"hr":              voidBehavior{tag: "hr", display: engine.DisplayBlock},
		"br":              voidBehavior{tag: "br", display: engine.DisplayInline},
		"script":          rawTextElementBehavior{tag: "script"},
		"style":           rawTextElementBehavior{tag: "style"},
	}
	for i := 1; i <= 6; i++ {
		m["h"+string(rune('0'+i))] = headingBehavior{level: i}
	}
	for name, tag := range inlineTags {
		m[name] = wrapBehavior{tag: tag, display: engine.DisplayInline, category: engine.CategoryFormatting}
	}
	for name, tag := range blockTags {
		m[name] = wrapBehavior{tag: tag, display: engine.DisplayBlock, category: engine.CategoryPureHTML}
	}
	return m
}

// BuiltinResolver resolves the fixed set of builtin directives that
// don't depend on document-local state (as opposed to MacroResolver
// and AliasResolver, which consult Context at resolution time).
type BuiltinResolver struct{}

func (BuiltinResolver) Resolve(name string) (engine.Behavior, bool) {
	b, ok := registry[name]
	return b, ok
}

func (BuiltinResolver) Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
