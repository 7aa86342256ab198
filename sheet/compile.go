package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"stylo/css"
	"stylo/renderer"
	"stylo/style"
)

// Result maps document names (slug-normalized) to the identifiers the
// renderer handed out.
type Result struct {
	ClassNames     map[string]string   // rule name -> base class
	VariantClasses map[string][]string // rule name -> classes per declared variant, in order
	AnimationNames map[string]string   // keyframe name -> animation name
	Fonts          []string            // family names, in document order
}

// Compile renders every rule (base first, then each declared variant),
// keyframe, font and static of the document through the renderer. Rules and
// keyframes are visited in natural name order so generated CSS is stable
// across runs.
func Compile(doc *Document, r *renderer.Renderer) *Result {
	res := &Result{
		ClassNames:     make(map[string]string),
		VariantClasses: make(map[string][]string),
		AnimationNames: make(map[string]string),
	}

	for _, name := range sortedNames(doc.Rules) {
		def := doc.Rules[name]
		rule := buildRule(name, def)
		key := slug.Make(name)
		res.ClassNames[key] = r.RenderRule(rule, nil)
		for _, v := range def.Variants {
			res.VariantClasses[key] = append(res.VariantClasses[key], r.RenderRule(rule, style.Props(v.Props)))
		}
	}

	for _, name := range sortedNames(doc.Keyframes) {
		steps := doc.Keyframes[name].Steps
		kf := &renderer.Keyframe{
			Name:   name,
			Render: func(style.Props) style.Style { return style.Style(steps) },
		}
		res.AnimationNames[slug.Make(name)] = r.RenderKeyframe(kf, nil)
	}

	for _, f := range doc.Fonts {
		res.Fonts = append(res.Fonts, r.RenderFont(f.Family, f.Files, style.Props(f.Properties)))
	}

	for _, s := range doc.Statics {
		if s.CSS != "" {
			r.RenderStatic(s.CSS)
			continue
		}
		r.RenderStaticRule(s.Selector, style.Style(s.Style))
	}
	return res
}

// buildRule closes over a rule definition: the base style merged with every
// variant whose props subset-match the render properties, later variants
// overriding earlier ones (cascade order).
func buildRule(name string, def RuleDef) *renderer.Rule {
	return &renderer.Rule{
		Name: name,
		Render: func(props style.Props) style.Style {
			merged := cloneStyle(def.Style)
			for _, v := range def.Variants {
				if matches(props, v.Props) {
					mergeStyle(merged, v.Style)
				}
			}
			return merged
		},
	}
}

// matches reports whether every wanted entry equals the corresponding render
// property. An empty want never matches - the base style already covers it.
func matches(props style.Props, want map[string]any) bool {
	if len(want) == 0 {
		return false
	}
	for k, v := range want {
		if !reflect.DeepEqual(props[k], v) {
			return false
		}
	}
	return true
}

func cloneStyle(src map[string]any) style.Style {
	out := make(style.Style, len(src))
	for k, v := range src {
		if nested, ok := style.Nested(v); ok {
			out[k] = cloneStyle(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// mergeStyle overlays src onto dst in place, merging nested blocks recursively
// and overriding scalars.
func mergeStyle(dst style.Style, src map[string]any) {
	for k, v := range src {
		nested, ok := style.Nested(v)
		if !ok {
			dst[k] = v
			continue
		}
		if existing, found := style.Nested(dst[k]); found {
			merged := cloneStyle(existing)
			mergeStyle(merged, nested)
			dst[k] = merged
			continue
		}
		dst[k] = cloneStyle(nested)
	}
}

// CheckFonts validates local font files referenced by the document against
// their extensions. Missing files are skipped - fonts are commonly served
// from elsewhere; corrupt or mislabeled ones are reported.
func CheckFonts(doc *Document, baseDir string) (err error) {
	for _, f := range doc.Fonts {
		for _, file := range f.Files {
			path := filepath.Join(baseDir, file)
			data, rerr := os.ReadFile(path)
			if rerr != nil {
				if os.IsNotExist(rerr) {
					continue
				}
				err = multierr.Append(err, fmt.Errorf("unable to read font file %s: %w", file, rerr))
				continue
			}
			if !css.ValidFontData(path, data) {
				err = multierr.Append(err, fmt.Errorf("font file %s does not match its extension", file))
			}
		}
	}
	return err
}

func sortedNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
