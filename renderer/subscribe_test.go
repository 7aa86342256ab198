package renderer

import (
	"testing"

	"stylo/style"
)

func TestSubscribe(t *testing.T) {
	r := New(Config{})

	var got []string
	r.Subscribe(func(cssText string) { got = append(got, cssText) })

	r.RenderRule(Static(style.Style{"color": "red"}), nil)
	if len(got) != 1 || got[0] != ".c0{color:red}" {
		t.Fatalf("unexpected notifications: %v", got)
	}

	// cached render - no notification
	r.RenderStatic("html{margin:0}")
	r.RenderStatic("html{margin:0}")
	if len(got) != 2 {
		t.Errorf("got %d notifications, want 2", len(got))
	}
	// each notification carries the cumulative text in bucket order - statics
	// come before plain rules regardless of call order
	if got[1] != "html{margin:0}.c0{color:red}" {
		t.Errorf("unexpected cumulative text: %q", got[1])
	}
}

func TestSubscribeNoDeltaDoesNotNotify(t *testing.T) {
	r := New(Config{})
	rule := Static(style.Style{"color": "red"})
	r.RenderRule(rule, nil)

	var notified int
	r.Subscribe(func(string) { notified++ })

	// variant resolving to the base style emits nothing and must stay silent
	r.RenderRule(rule, style.Props{"unused": true})
	if notified != 0 {
		t.Errorf("got %d notifications, want 0", notified)
	}
}

func TestUnsubscribe(t *testing.T) {
	r := New(Config{})

	var a, b int
	subA := r.Subscribe(func(string) { a++ })
	r.Subscribe(func(string) { b++ })

	r.RenderStatic("html{margin:0}")
	subA.Unsubscribe()
	subA.Unsubscribe() // repeat is a no-op
	r.RenderStatic("body{margin:0}")

	if a != 1 {
		t.Errorf("unsubscribed listener invoked %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining listener invoked %d times, want 2", b)
	}
}

func TestSubscriberAddedDuringNotification(t *testing.T) {
	r := New(Config{})

	var late int
	r.Subscribe(func(string) {
		if late == 0 {
			r.Subscribe(func(string) { late++ })
		}
	})

	// listener list is snapshotted - the late subscriber misses this round
	r.RenderStatic("html{margin:0}")
	if late != 0 {
		t.Errorf("late subscriber invoked in its own round: %d", late)
	}
	r.RenderStatic("body{margin:0}")
	if late != 1 {
		t.Errorf("late subscriber got %d notifications, want 1", late)
	}
}
