package tree

import (
	"time"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/snapshot"
)

// RenderContext is the per-widget view of one cycle. It carries the
// cycle's single clock reading, the widget's stable identity, its layout
// constraints, and access to the widget's own snapshot. A fresh context is
// derived for every child, so a widget can never reach a sibling's state.
type RenderContext struct {
	now   time.Time
	id    pulse.Identity
	cons  Constraints
	cache *snapshot.Cache
	snap  *snapshot.Snapshot // claimed lazily, at most once
}

// NewRenderContext creates the root context for one cycle. The cycle
// driver calls this once per pass with the cycle's clock reading.
func NewRenderContext(now time.Time, cache *snapshot.Cache, cons Constraints) *RenderContext {
	return &RenderContext{
		now:   now,
		id:    pulse.RootIdentity(),
		cons:  cons,
		cache: cache,
	}
}

// Now returns the cycle's clock reading. Every widget in the same pass
// observes the same value.
func (rc *RenderContext) Now() time.Time { return rc.now }

// Identity returns the current widget's stable identity.
func (rc *RenderContext) Identity() pulse.Identity { return rc.id }

// Constraints returns the layout constraints for the current widget.
func (rc *RenderContext) Constraints() Constraints { return rc.cons }

// Snapshot returns the current widget's snapshot, claiming its identity
// for this cycle on first use. Repeated calls within the same widget's
// turn return the same snapshot; a second widget claiming this identity
// elsewhere in the tree surfaces a [pulse.DuplicateIdentityError].
func (rc *RenderContext) Snapshot() (*snapshot.Snapshot, error) {
	if rc.snap != nil {
		return rc.snap, nil
	}
	s, err := rc.cache.LookupOrCreate(rc.id)
	if err != nil {
		return nil, err
	}
	rc.snap = s
	return s, nil
}

// StepAnimation claims the widget's snapshot and advances its animation
// with the cycle's clock reading, returning the elapsed duration since the
// animation began. See [snapshot.Snapshot.StepAnimation].
func (rc *RenderContext) StepAnimation(signature uint64) (time.Duration, error) {
	s, err := rc.Snapshot()
	if err != nil {
		return 0, err
	}
	return s.StepAnimation(signature, rc.now), nil
}

// RenderChild evaluates a child widget under the structural identity
// derived from its index.
func (rc *RenderContext) RenderChild(index int, w Widget, cons Constraints) (Output, pulse.Request, error) {
	return w.Render(rc.child(rc.id.Child(index), cons))
}

// RenderKeyed evaluates a child widget under an explicit identity key,
// shielding its state from sibling reordering.
func (rc *RenderContext) RenderKeyed(key string, w Widget, cons Constraints) (Output, pulse.Request, error) {
	return w.Render(rc.child(rc.id.Keyed(key), cons))
}

func (rc *RenderContext) child(id pulse.Identity, cons Constraints) *RenderContext {
	return &RenderContext{
		now:   rc.now,
		id:    id,
		cons:  cons,
		cache: rc.cache,
	}
}
