// Package snapshot carries transient per-widget state across rebuild cycles.
//
// A declarative widget tree is rebuilt from scratch every cycle, so any
// state that must survive a rebuild — most importantly when a running
// animation began — lives here, keyed by stable widget identity. The
// [Cache] is exclusively owned and mutated by the cycle driver; widgets
// receive a narrow view of their own [Snapshot] during their turn and
// cannot see others'.
package snapshot

import (
	"time"

	"github.com/gogpu/pulse"
)

// State is the marker interface for typed per-widget-kind snapshot state.
//
// Each widget kind defines its own concrete state type and asserts it back
// from its own snapshot, so type identity is resolved by the widget that
// created the state rather than by runtime inspection of an opaque value.
type State interface {
	WidgetState()
}

// AnimState represents the progress of one running animation.
type AnimState struct {
	// Origin is when the current animation run began.
	Origin time.Time

	// Signature is a content hash of the animation's parameters (start
	// value, end value, duration, easing curve). A matching signature on a
	// later cycle means the same logical animation is continuing; a
	// mismatch means a new one has begun.
	Signature uint64
}

// Snapshot is the per-widget carry-over record for one identity.
//
// A snapshot is owned exclusively by the cache and handed to its widget for
// the duration of the widget's turn within a cycle. It owns zero or one
// AnimState.
type Snapshot struct {
	id       pulse.Identity
	anim     *AnimState
	state    State
	lastSeen uint64 // cycle number of the most recent claim
}

// Identity returns the widget identity the snapshot is keyed by.
func (s *Snapshot) Identity() pulse.Identity { return s.id }

// Anim returns the current animation state, if any.
func (s *Snapshot) Anim() (AnimState, bool) {
	if s.anim == nil {
		return AnimState{}, false
	}
	return *s.anim, true
}

// State returns the widget-kind state stored on the snapshot, or nil.
func (s *Snapshot) State() State { return s.state }

// SetState stores widget-kind state on the snapshot.
func (s *Snapshot) SetState(st State) { s.state = st }

// StepAnimation advances the snapshot's animation for this cycle and
// returns the elapsed duration since the animation began.
//
// If the signature matches the cached one, the origin time is carried over
// unchanged and the same logical animation continues. On mismatch — or the
// first time the widget animates — the origin resets to now and the elapsed
// duration is zero.
func (s *Snapshot) StepAnimation(signature uint64, now time.Time) time.Duration {
	if s.anim == nil || s.anim.Signature != signature {
		s.anim = &AnimState{Origin: now, Signature: signature}
		return 0
	}
	return now.Sub(s.anim.Origin)
}

// ClearAnimation discards the animation state. The next StepAnimation
// starts a fresh run.
func (s *Snapshot) ClearAnimation() { s.anim = nil }
