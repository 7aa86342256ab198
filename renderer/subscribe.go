package renderer

import (
	"github.com/google/uuid"
)

type listener struct {
	id uuid.UUID
	fn func(cssText string)
}

// Subscription is the unsubscribe handle returned by Subscribe.
type Subscription struct {
	r  *Renderer
	id uuid.UUID
}

// Unsubscribe removes the callback from the renderer. Safe to call more than
// once and during an in-progress notification round (the current round may or
// may not still invoke the callback).
func (s *Subscription) Unsubscribe() {
	for i, l := range s.r.listeners {
		if l.id == s.id {
			s.r.listeners = append(s.r.listeners[:i], s.r.listeners[i+1:]...)
			return
		}
	}
}

// Subscribe registers a callback invoked with the full concatenated CSS text
// after every change. Subscriptions survive Clear.
func (r *Renderer) Subscribe(fn func(cssText string)) *Subscription {
	id := uuid.Must(uuid.NewV7())
	r.listeners = append(r.listeners, listener{id: id, fn: fn})
	return &Subscription{r: r, id: id}
}

// emitChange synchronously notifies subscribers in subscription order with the
// cumulative CSS text. The listener list is snapshotted first: a subscriber
// added from within a callback is not invoked for this emission.
func (r *Renderer) emitChange() {
	if len(r.listeners) == 0 {
		return
	}
	cssText := r.RenderToString()
	current := make([]listener, len(r.listeners))
	copy(current, r.listeners)
	for _, l := range current {
		l.fn(cssText)
	}
}
