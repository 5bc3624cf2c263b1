package loop

import (
	"context"

	"github.com/gogpu/pulse"
)

// Waiter suspends the host between cycles according to a directive. It is
// the only place platform-specific wait primitives are invoked; the core
// itself never sleeps or polls.
//
// Wait returns when the directive is satisfied — the deadline elapsed or
// an external event arrived — or with an error to stop the loop (for
// example, the platform window closed).
type Waiter interface {
	Wait(d Directive) error
}

// WaiterFunc adapts a function to the Waiter interface.
type WaiterFunc func(d Directive) error

// Wait calls f.
func (f WaiterFunc) Wait(d Directive) error { return f(d) }

// Run drives cycles until ctx is cancelled or the waiter reports an
// error. Cancellation is observed only at the cycle boundary: no cycle is
// interrupted mid-flight.
func Run(ctx context.Context, d *Driver, w Waiter) error {
	log := pulse.Logger()
	log.Info("loop started")
	defer log.Info("loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := d.RunCycle()
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := w.Wait(For(req, d.clock.Now())); err != nil {
			return err
		}
	}
}
