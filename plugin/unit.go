package plugin

import (
	"strconv"

	"stylo/style"
)

// Properties whose numeric values are valid without a unit. Bare numbers for
// anything else get the configured default unit appended.
var unitless = map[string]bool{
	"animationIterationCount": true,
	"columnCount":             true,
	"columns":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"fontWeight":              true,
	"gridColumn":              true,
	"gridRow":                 true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"scale":                   true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// Unit returns a plugin that appends the given unit to bare numeric values of
// dimensional properties. It recurses into nested pseudo/media blocks and
// fallback value lists; unitless properties and string values are left alone.
func Unit(unit string) Plugin {
	var apply func(st style.Style) style.Style
	apply = func(st style.Style) style.Style {
		out := make(style.Style, len(st))
		for k, v := range st {
			if nested, ok := style.Nested(v); ok {
				out[k] = apply(nested)
				continue
			}
			if list, ok := v.([]any); ok {
				withUnits := make([]any, len(list))
				for i, item := range list {
					withUnits[i] = addUnit(k, item, unit)
				}
				out[k] = withUnits
				continue
			}
			out[k] = addUnit(k, v, unit)
		}
		return out
	}
	return func(st style.Style, _ Meta) style.Style {
		return apply(st)
	}
}

func addUnit(prop string, v any, unit string) any {
	if unitless[prop] {
		return v
	}
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10) + unit
	case int64:
		return strconv.FormatInt(x, 10) + unit
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 64) + unit
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64) + unit
	}
	return v
}
