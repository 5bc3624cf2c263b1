package loop

import (
	"fmt"
	"time"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/snapshot"
	"github.com/gogpu/pulse/tree"
)

// EventHandler receives one drained event during the Updating phase.
type EventHandler func(ev Event)

// Presenter receives the composed root output of a successful cycle.
// Presenting happens in the Scheduled phase, after aggregation.
type Presenter interface {
	Present(out tree.Output) error
}

// Driver orchestrates rebuild cycles over a widget tree.
//
// The driver exclusively owns the snapshot cache; widgets reach their own
// snapshot only through the per-turn RenderContext. All driver methods
// must be called from a single goroutine — the scheduling model is
// single-threaded and cooperative. The event queue is the one concurrent
// entry point.
type Driver struct {
	root      tree.Widget
	clock     pulse.Clock
	cache     *snapshot.Cache
	queue     *Queue
	handler   EventHandler
	presenter Presenter
	cons      tree.Constraints

	phase   Phase
	lastNow time.Time
	haveNow bool
	cycles  uint64
}

// New creates a driver for the given root widget.
func New(root tree.Widget, opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = snapshot.NewCache()
	}
	if o.queue == nil {
		o.queue = NewQueue()
	}
	return &Driver{
		root:      root,
		clock:     o.clock,
		cache:     o.cache,
		queue:     o.queue,
		handler:   o.handler,
		presenter: o.presenter,
		cons:      o.cons,
		phase:     PhaseIdle,
	}
}

// Queue returns the driver's event queue. Any goroutine may post to it.
func (d *Driver) Queue() *Queue { return d.queue }

// Phase returns the driver's current phase. Between RunCycle calls the
// driver is always Idle.
func (d *Driver) Phase() Phase { return d.phase }

// Cache returns the snapshot cache for monitoring. Only the driver may
// mutate it; treat the return value as read-only.
func (d *Driver) Cache() *snapshot.Cache { return d.cache }

// Cycles returns the number of completed cycles.
func (d *Driver) Cycles() uint64 { return d.cycles }

// RunCycle executes one full Update→Render→Aggregate pass and returns the
// resulting aggregate wake request. Exactly one request is attributed to
// the whole tree per cycle; no widget's individual request ever reaches
// the scheduler directly.
//
// A [pulse.DuplicateIdentityError] or [pulse.ClockRegressionError] aborts
// the cycle: the error propagates to the caller, the snapshot cache keeps
// every snapshot (no widget is silently dropped, no animation silently
// jumps), and the driver returns to Idle.
func (d *Driver) RunCycle() (pulse.Request, error) {
	if d.phase != PhaseIdle {
		return pulse.None, fmt.Errorf("loop: RunCycle called in phase %s", d.phase)
	}
	log := pulse.Logger()

	// Updating: dispatch queued events in FIFO order.
	d.phase = PhaseUpdating
	for _, ev := range d.queue.drain() {
		if d.handler != nil {
			d.handler(ev)
		}
	}

	// Rendering: one clock read shared by every widget this pass.
	d.phase = PhaseRendering
	now := d.clock.Now()
	if d.haveNow && now.Before(d.lastNow) {
		err := &pulse.ClockRegressionError{Prev: d.lastNow, Now: now}
		d.phase = PhaseIdle
		return pulse.None, err
	}
	d.lastNow, d.haveNow = now, true

	d.cache.BeginCycle()
	rc := tree.NewRenderContext(now, d.cache, d.cons)
	out, req, err := d.root.Render(rc)
	if err != nil {
		d.cache.AbortCycle()
		d.phase = PhaseIdle
		return pulse.None, fmt.Errorf("loop: cycle %d aborted: %w", d.cycles+1, err)
	}
	d.cache.EndCycle()

	// Scheduled: the aggregate is final; hand the frame to the presenter.
	d.phase = PhaseScheduled
	if d.presenter != nil {
		if perr := d.presenter.Present(out); perr != nil {
			log.Warn("present failed", "cycle", d.cycles+1, "err", perr)
		}
	}

	d.cycles++
	log.Debug("cycle complete",
		"cycle", d.cycles,
		"request", req.String(),
		"snapshots", d.cache.Len(),
	)

	d.phase = PhaseIdle
	return req, nil
}
