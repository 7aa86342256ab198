package renderer

import (
	"stylo/style"
)

// RenderFunc computes a style object from a properties map. Definitions must
// be pure: equal properties must yield equal styles, or caching breaks.
type RenderFunc func(style.Props) style.Style

// Rule is a stylable slot: a definition that, given properties, yields a style
// object. The handle pointer is the rule's identity - render the same *Rule
// and the cached CSS is reused, render an equal function behind a different
// handle and it counts as a new rule.
type Rule struct {
	Name   string // optional, used in debug logging only
	Render RenderFunc
}

// NewRule wraps a render function in a fresh rule handle.
func NewRule(fn RenderFunc) *Rule {
	return &Rule{Render: fn}
}

// Keyframe is an animation definition yielding a steps map ("0%", "100%",
// "from", "to" keys with nested declarations). Identity works like Rule.
// Keyframes are rendered whole and never diffed.
type Keyframe struct {
	Name   string
	Render RenderFunc
}

// NewKeyframe wraps a render function in a fresh keyframe handle.
func NewKeyframe(fn RenderFunc) *Keyframe {
	return &Keyframe{Render: fn}
}

// Static returns a rule that ignores properties and always yields the given
// style. Convenient for rules without prop-driven variants.
func Static(st style.Style) *Rule {
	return NewRule(func(style.Props) style.Style { return st })
}
