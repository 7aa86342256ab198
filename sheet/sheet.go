// Package sheet loads declarative stylesheet documents (YAML) and compiles
// them through a renderer. A document names rules with prop-driven variants,
// keyframe animations, font faces and static blocks; compilation resolves
// everything to class/animation names and leaves the generated CSS in the
// renderer's buffers.
package sheet

import (
	"bytes"
	"fmt"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Document is a parsed stylesheet document.
type Document struct {
	Version   int                    `yaml:"version"`
	Rules     map[string]RuleDef     `yaml:"rules,omitempty"`
	Keyframes map[string]KeyframeDef `yaml:"keyframes,omitempty"`
	Fonts     []FontDef              `yaml:"fonts,omitempty"`
	Statics   []StaticDef            `yaml:"statics,omitempty"`
}

// RuleDef is a named rule: a base style plus variants applied when the render
// properties match. Nested pseudo-selector and @media blocks are allowed
// anywhere a style is.
type RuleDef struct {
	Style    map[string]any `yaml:"style,omitempty"`
	Variants []VariantDef   `yaml:"variants,omitempty"`
}

// VariantDef overlays extra declarations when every props entry matches the
// properties a rule is rendered with.
type VariantDef struct {
	Props map[string]any `yaml:"props"`
	Style map[string]any `yaml:"style"`
}

// KeyframeDef is a named animation: step key ("0%", "from", ...) to
// declarations.
type KeyframeDef struct {
	Steps map[string]any `yaml:"steps"`
}

// FontDef declares a font face.
type FontDef struct {
	Family     string         `yaml:"family"`
	Files      []string       `yaml:"files"`
	Properties map[string]any `yaml:"properties,omitempty"`
}

// StaticDef is either a selector with a flat style object or a raw CSS blob -
// exactly one of the two forms.
type StaticDef struct {
	Selector string         `yaml:"selector,omitempty"`
	Style    map[string]any `yaml:"style,omitempty"`
	CSS      string         `yaml:"css,omitempty"`
}

// Load decodes and validates a stylesheet document. Decoding is strict -
// unknown fields are errors, typos do not pass silently.
func Load(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to decode stylesheet document: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) validate() (err error) {
	if d.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported document version %d", d.Version))
	}
	for name, rule := range d.Rules {
		if len(rule.Style) == 0 && len(rule.Variants) == 0 {
			err = multierr.Append(err, fmt.Errorf("rule %q has neither style nor variants", name))
		}
		for i, v := range rule.Variants {
			if len(v.Props) == 0 {
				err = multierr.Append(err, fmt.Errorf("rule %q variant %d has no props to match", name, i))
			}
			if len(v.Style) == 0 {
				err = multierr.Append(err, fmt.Errorf("rule %q variant %d has no style", name, i))
			}
		}
	}
	for name, kf := range d.Keyframes {
		if len(kf.Steps) == 0 {
			err = multierr.Append(err, fmt.Errorf("keyframe %q has no steps", name))
		}
	}
	for i, f := range d.Fonts {
		if f.Family == "" {
			err = multierr.Append(err, fmt.Errorf("font %d has no family", i))
		}
		if len(f.Files) == 0 {
			err = multierr.Append(err, fmt.Errorf("font %d (%s) has no files", i, f.Family))
		}
	}
	for i, s := range d.Statics {
		switch {
		case s.CSS != "" && (s.Selector != "" || len(s.Style) > 0):
			err = multierr.Append(err, fmt.Errorf("static %d mixes raw css with selector form", i))
		case s.CSS == "" && (s.Selector == "" || len(s.Style) == 0):
			err = multierr.Append(err, fmt.Errorf("static %d needs either css text or selector with style", i))
		}
	}
	return err
}
