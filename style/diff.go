package style

import (
	"maps"
	"reflect"
)

// Diff returns the entries of resolved that are new or changed relative to
// base. Unchanged entries are omitted, entries present only in base are
// ignored - the base class stays applied alongside the delta class, so
// removals never need to be expressed. Nested blocks are diffed recursively
// and omitted when the nested diff comes out empty. A nil or empty base
// returns a copy of resolved whole.
func Diff(resolved, base Style) Style {
	if len(base) == 0 {
		out := make(Style, len(resolved))
		maps.Copy(out, resolved)
		return out
	}

	out := make(Style)
	for k, v := range resolved {
		bv, ok := base[k]
		if !ok {
			out[k] = v
			continue
		}
		if nv, isNested := Nested(v); isNested {
			if nb, baseNested := Nested(bv); baseNested {
				if d := Diff(nv, nb); len(d) > 0 {
					out[k] = d
				}
				continue
			}
			out[k] = v
			continue
		}
		if !reflect.DeepEqual(v, bv) {
			out[k] = v
		}
	}
	return out
}
