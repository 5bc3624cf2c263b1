package loop

import (
	"image"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/snapshot"
	"github.com/gogpu/pulse/tree"
)

// Option configures a Driver during creation.
// Use functional options to customize Driver behavior.
//
// Example:
//
//	// Default system clock, fresh cache
//	d := loop.New(root)
//
//	// Manual clock for headless driving (dependency injection)
//	d := loop.New(root, loop.WithClock(pulse.NewManualClock(start)))
type Option func(*driverOptions)

// driverOptions holds optional configuration for Driver creation.
type driverOptions struct {
	clock     pulse.Clock
	cache     *snapshot.Cache
	queue     *Queue
	handler   EventHandler
	presenter Presenter
	cons      tree.Constraints
}

// defaultOptions returns the default driver options.
func defaultOptions() driverOptions {
	return driverOptions{
		clock: pulse.SystemClock(),
		cons:  tree.Exact(image.Pt(800, 600)),
	}
}

// WithClock sets the clock the driver reads once per cycle.
func WithClock(c pulse.Clock) Option {
	return func(o *driverOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithCache sets a pre-populated snapshot cache. Useful for handing an
// existing widget tree's state to a new driver.
func WithCache(c *snapshot.Cache) Option {
	return func(o *driverOptions) {
		o.cache = c
	}
}

// WithQueue sets a shared event queue. Use this when event producers are
// created before the driver.
func WithQueue(q *Queue) Option {
	return func(o *driverOptions) {
		o.queue = q
	}
}

// WithEventHandler sets the callback that receives each drained event at
// the start of a cycle, in FIFO order.
func WithEventHandler(h EventHandler) Option {
	return func(o *driverOptions) {
		o.handler = h
	}
}

// WithPresenter sets the presenter that receives the composed root output
// after each successful cycle.
func WithPresenter(p Presenter) Option {
	return func(o *driverOptions) {
		o.presenter = p
	}
}

// WithConstraints sets the root layout constraints for each cycle.
func WithConstraints(c tree.Constraints) Option {
	return func(o *driverOptions) {
		o.cons = c
	}
}
