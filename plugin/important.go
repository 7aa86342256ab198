package plugin

import (
	"strings"

	"stylo/style"
)

const importantSuffix = " !important"

// Important returns a plugin that suffixes string declaration values with
// " !important". Values already carrying the marker are left alone. Run it
// after Unit so converted numeric values are covered too.
func Important() Plugin {
	var apply func(st style.Style) style.Style
	apply = func(st style.Style) style.Style {
		out := make(style.Style, len(st))
		for k, v := range st {
			if nested, ok := style.Nested(v); ok {
				out[k] = apply(nested)
				continue
			}
			if list, ok := v.([]any); ok {
				marked := make([]any, len(list))
				for i, item := range list {
					marked[i] = markImportant(item)
				}
				out[k] = marked
				continue
			}
			out[k] = markImportant(v)
		}
		return out
	}
	return func(st style.Style, _ Meta) style.Style {
		return apply(st)
	}
}

func markImportant(v any) any {
	s, ok := v.(string)
	if !ok || strings.HasSuffix(s, importantSuffix) {
		return v
	}
	return s + importantSuffix
}
