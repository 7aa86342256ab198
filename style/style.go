// Package style defines the style object model shared by the renderer and its
// collaborators: property maps, flat-or-nested style objects, deterministic
// stringification, short reference tokens and baseline diffing.
//
// A Style is a map from property names (camelCase, e.g. "fontSize") to values.
// A value is either a scalar declaration (string, bool, integer, float), a
// []any list of fallback values, or a nested block - a map keyed by a
// pseudo-selector (":hover") or a media query ("@media (min-width: 100px)").
package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// Props is a properties map a rule or keyframe definition is resolved with.
type Props map[string]any

// Style is a flat-or-nested style object.
type Style map[string]any

// Nested reports whether a declaration value is a nested style block and
// returns it as a Style when it is. Slices are declarations (fallback value
// lists), never blocks.
func Nested(v any) (Style, bool) {
	switch m := v.(type) {
	case Style:
		return m, true
	case Props:
		return Style(m), true
	case map[string]any:
		return Style(m), true
	}
	return nil, false
}

// SortedKeys returns map keys in natural sort order. All deterministic walks
// over style objects and property maps use this ordering.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Stringify produces a deterministic textual signature of a map: two maps with
// equal key/value sets yield the same string regardless of key order. Values
// are encoded with a type tag so "12" and 12 never collide.
func Stringify(m map[string]any) string {
	var b strings.Builder
	for _, k := range SortedKeys(m) {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(encodeValue(m[k]))
		b.WriteByte(';')
	}
	return b.String()
}

func encodeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "n"
	case string:
		return "s:" + x
	case bool:
		if x {
			return "b:1"
		}
		return "b:0"
	case int:
		return "i:" + strconv.FormatInt(int64(x), 10)
	case int64:
		return "i:" + strconv.FormatInt(x, 10)
	case uint64:
		return "i:" + strconv.FormatUint(x, 10)
	case float32:
		return "f:" + strconv.FormatFloat(float64(x), 'g', -1, 64)
	case float64:
		return "f:" + strconv.FormatFloat(x, 'g', -1, 64)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			parts = append(parts, encodeValue(item))
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	if nested, ok := Nested(v); ok {
		return "{" + Stringify(nested) + "}"
	}
	return fmt.Sprintf("v:%v", v)
}
