package loop

import (
	"fmt"
	"time"

	"github.com/gogpu/pulse"
)

// Wait selects the host loop's wait policy for the gap between cycles.
type Wait uint8

const (
	// WaitEvent blocks indefinitely until an external event arrives.
	WaitEvent Wait = iota

	// WaitUntil blocks until a deadline or an external event, whichever
	// comes first.
	WaitUntil

	// WaitPoll runs the next cycle as soon as possible, bounded only by
	// the display refresh.
	WaitPoll
)

// String returns the wait policy name.
func (w Wait) String() string {
	switch w {
	case WaitEvent:
		return "Event"
	case WaitUntil:
		return "Until"
	case WaitPoll:
		return "Poll"
	default:
		return "Unknown"
	}
}

// Directive is the concrete wait policy derived from an aggregate redraw
// request. Until is meaningful only for WaitUntil.
type Directive struct {
	Wait  Wait
	Until time.Time
}

// String returns a readable form of the directive.
func (d Directive) String() string {
	if d.Wait == WaitUntil {
		return fmt.Sprintf("Until(%s)", d.Until.Format(time.RFC3339Nano))
	}
	return d.Wait.String()
}

// For maps an aggregate request onto a wait directive. It is a pure
// function with no internal state — the only place this translation
// happens.
//
//   - Immediate → poll continuously.
//   - At(t)     → wait until max(now, t) or an external event.
//   - None      → block until an external event.
func For(req pulse.Request, now time.Time) Directive {
	switch {
	case req.IsImmediate():
		return Directive{Wait: WaitPoll}
	case req.IsNone():
		return Directive{Wait: WaitEvent}
	}
	t, _ := req.Deadline()
	if t.Before(now) {
		t = now
	}
	return Directive{Wait: WaitUntil, Until: t}
}
