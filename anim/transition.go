package anim

import (
	"math"
	"time"

	"github.com/gogpu/pulse"
)

// FNV-1a constants, shared by the signature computations in this package.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// Transition animates a scalar value between two endpoints over a fixed
// duration with a named easing curve.
//
// A Transition is a pure description; progress comes from the elapsed
// duration returned by the snapshot cache. Two transitions with identical
// parameters have identical signatures, so a rebuilt widget carrying the
// same transition continues where it left off, while any parameter change
// restarts the run.
//
// Example:
//
//	tr := anim.Transition{From: 10, To: 100, Duration: time.Second}
//	elapsed, _ := rc.StepAnimation(tr.Signature())
//	width := tr.Value(elapsed)
type Transition struct {
	// From is the value at elapsed zero.
	From float64

	// To is the value at and after Duration.
	To float64

	// Duration is the length of the run. Zero or negative snaps to To.
	Duration time.Duration

	// Curve is the easing applied to normalized time.
	Curve Curve
}

// Signature computes a 64-bit FNV-1a hash of the transition parameters.
func (tr Transition) Signature() uint64 {
	hash := uint64(fnvOffset)
	for _, v := range [4]uint64{
		math.Float64bits(tr.From),
		math.Float64bits(tr.To),
		uint64(tr.Duration),
		uint64(tr.Curve),
	} {
		hash ^= v
		hash *= fnvPrime
	}
	return hash
}

// Value returns the interpolated value at the given elapsed time.
func (tr Transition) Value(elapsed time.Duration) float64 {
	if tr.Duration <= 0 || elapsed >= tr.Duration {
		return tr.To
	}
	if elapsed < 0 {
		return tr.From
	}
	t := float64(elapsed) / float64(tr.Duration)
	return Lerp(tr.From, tr.To, tr.Curve.Ease(t))
}

// Done reports whether the run has finished at the given elapsed time.
func (tr Transition) Done(elapsed time.Duration) bool {
	return elapsed >= tr.Duration
}

// Request returns the redraw request for the transition's current state:
// Immediate while running, None once done. A finished transition stops
// driving the redraw clock entirely.
func (tr Transition) Request(elapsed time.Duration) pulse.Request {
	if tr.Done(elapsed) {
		return pulse.None
	}
	return pulse.Immediate
}
