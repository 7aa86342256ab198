package renderer

import (
	"go.uber.org/zap"

	"stylo/style"
)

// Enhancer decorates a renderer at construction time. New applies enhancers
// left to right, once, before the renderer is handed to callers; each receives
// the current instance and returns a (possibly new) one.
type Enhancer func(*Renderer) *Renderer

// WithLogging returns an enhancer that debug-logs every style resolution
// through the renderer's logger.
func WithLogging() Enhancer {
	return func(r *Renderer) *Renderer {
		next := r.Resolve
		r.Resolve = func(fn RenderFunc, props style.Props) style.Style {
			st := next(fn, props)
			r.log.Debug("resolved style",
				zap.Int("props", len(props)),
				zap.Int("entries", len(st)))
			return st
		}
		return r
	}
}
