package css

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"stylo/style"
)

// Declarations serializes a flat style map to "prop:value;prop:value" CSS
// declaration text (no trailing semicolon). Property names are visited in
// natural sort order. Nested blocks are not valid at this level and are
// skipped - the renderer flattens them before serialization.
func Declarations(flat map[string]any) string {
	parts := make([]string, 0, len(flat))
	for _, k := range style.SortedKeys(flat) {
		v := flat[k]
		if _, nested := style.Nested(v); nested {
			continue
		}
		prop := hyphenate(k)
		if list, ok := v.([]any); ok {
			// fallback values - one declaration per entry, first parsable wins
			// in the browser cascade
			for _, item := range list {
				parts = append(parts, prop+":"+formatValue(item))
			}
			continue
		}
		parts = append(parts, prop+":"+formatValue(v))
	}
	return strings.Join(parts, ";")
}

// Keyframe serializes a keyframe-steps map to one "@keyframes name{...}" block
// per vendor prefix plus the unprefixed form, which always comes last.
func Keyframe(steps map[string]any, name string, prefixes []string) string {
	var body strings.Builder
	for _, step := range style.SortedKeys(steps) {
		st, ok := style.Nested(steps[step])
		if !ok {
			continue
		}
		body.WriteString(step)
		body.WriteByte('{')
		body.WriteString(Declarations(st))
		body.WriteByte('}')
	}

	var b strings.Builder
	for _, prefix := range prefixes {
		b.WriteString("@" + prefix + "keyframes " + name + "{" + body.String() + "}")
	}
	b.WriteString("@keyframes " + name + "{" + body.String() + "}")
	return b.String()
}

// hyphenate converts a camelCase property name to its hyphenated CSS form.
// Vendor-prefixed names (WebkitTransform, msTransform, MozAppearance) gain the
// leading dash the CSS syntax requires.
func hyphenate(prop string) string {
	var b strings.Builder
	b.Grow(len(prop) + 4)
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if strings.HasPrefix(out, "ms-") || strings.HasPrefix(out, "o-") {
		return "-" + out
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
