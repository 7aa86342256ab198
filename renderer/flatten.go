package renderer

import (
	"strings"

	"go.uber.org/zap"

	"stylo/css"
	"stylo/style"
)

const mediaMarker = "@media"

type entryKind int

const (
	entryDeclaration entryKind = iota
	entryPseudo
	entryMedia
	entryUnknown
)

// classify tags one style entry before recursion: plain declaration, nested
// pseudo-selector block, nested media block, or an unrecognized nested block.
func classify(key string, v any) (entryKind, style.Style) {
	nested, ok := style.Nested(v)
	if !ok {
		return entryDeclaration, nil
	}
	switch {
	case strings.HasPrefix(key, ":"):
		return entryPseudo, nested
	case strings.HasPrefix(key, mediaMarker):
		return entryMedia, nested
	}
	return entryUnknown, nested
}

// emitStyle recursively flattens a processed style object into the CSS
// buffers, carrying the accumulated pseudo-selector suffix and the accumulated
// media condition. Keys are visited in natural sort order so output is
// deterministic; nested blocks are emitted before the current level's own
// declarations. Returns whether any CSS text was appended.
func (r *Renderer) emitStyle(st style.Style, className, pseudo, media string) bool {
	emitted := false
	flat := make(style.Style)

	for _, k := range style.SortedKeys(st) {
		kind, nested := classify(k, st[k])
		switch kind {
		case entryPseudo:
			if r.emitStyle(nested, className, pseudo+k, media) {
				emitted = true
			}
		case entryMedia:
			cond := strings.TrimSpace(strings.TrimPrefix(k, mediaMarker))
			if media != "" {
				cond = media + " and " + cond
			}
			if r.emitStyle(nested, className, pseudo, cond) {
				emitted = true
			}
		case entryUnknown:
			// permissive: not a pseudo block, not a media block - excluded
			// from the flat ruleset
			r.log.Debug("dropping unrecognized nested block", zap.String("key", k), zap.String("class", className))
		default:
			flat[k] = st[k]
		}
	}

	if len(flat) > 0 {
		fragment := "." + className + pseudo + "{" + css.Declarations(flat) + "}"
		if media != "" {
			r.mediaBucket(media).WriteString(fragment)
		} else {
			r.rules.WriteString(fragment)
		}
		emitted = true
	}
	return emitted
}

// mediaBucket returns the accumulator for a combined media condition, creating
// it (and recording first-insertion order) when new.
func (r *Renderer) mediaBucket(cond string) *strings.Builder {
	if b, ok := r.media[cond]; ok {
		return b
	}
	b := &strings.Builder{}
	r.media[cond] = b
	r.mediaOrder = append(r.mediaOrder, cond)
	return b
}
