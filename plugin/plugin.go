// Package plugin implements the style processor: an ordered chain of pure
// transforms a style object passes through before serialization. Plugins see
// rendering metadata (what kind of output is being produced and under which
// identifier) so they can behave differently for rules, keyframes and statics.
package plugin

import (
	"stylo/style"
)

// Type tells a plugin what kind of output the processed style feeds.
type Type int

const (
	TypeRule Type = iota
	TypeKeyframe
	TypeStatic
)

func (t Type) String() string {
	switch t {
	case TypeRule:
		return "rule"
	case TypeKeyframe:
		return "keyframe"
	case TypeStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Meta is the rendering metadata passed through the plugin chain. ClassName
// carries the animation name for keyframes; Selector is set for static rules
// only. Definition holds the rule or keyframe handle being rendered, when any.
type Meta struct {
	Type       Type
	ClassName  string
	ID         int
	Props      style.Props
	Selector   string
	Definition any
}

// Plugin transforms a style object. Plugins must not mutate their input.
type Plugin func(style.Style, Meta) style.Style

// Process runs a style object through the chain left to right. An empty chain
// returns the input unchanged.
func Process(st style.Style, meta Meta, plugins []Plugin) style.Style {
	for _, p := range plugins {
		st = p(st, meta)
	}
	return st
}
