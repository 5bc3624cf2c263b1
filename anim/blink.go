package anim

import (
	"time"

	"github.com/gogpu/pulse"
)

// DefaultBlinkPeriod is the blink half-period used when none is set.
const DefaultBlinkPeriod = 500 * time.Millisecond

// Blink computes the phase of a fixed-period on/off animation, such as a
// text cursor. The widget is visible for one period, hidden for the next.
type Blink struct {
	// Period is the duration of one visible (or hidden) phase.
	// Zero or negative means DefaultBlinkPeriod.
	Period time.Duration
}

func (b Blink) period() time.Duration {
	if b.Period <= 0 {
		return DefaultBlinkPeriod
	}
	return b.Period
}

// Signature hashes the blink parameters for snapshot continuity.
func (b Blink) Signature() uint64 {
	hash := uint64(fnvOffset)
	hash ^= uint64(b.period())
	hash *= fnvPrime
	hash ^= blinkTag
	hash *= fnvPrime
	return hash
}

// Visible reports whether the blinking content is shown at the given
// elapsed time since the animation began.
func (b Blink) Visible(elapsed time.Duration) bool {
	if elapsed < 0 {
		return true
	}
	return (elapsed/b.period())%2 == 0
}

// Next returns the redraw request for the upcoming phase flip: At the next
// period boundary after the current elapsed time.
func (b Blink) Next(now time.Time, elapsed time.Duration) pulse.Request {
	p := b.period()
	rem := p - elapsed%p
	return pulse.At(now.Add(rem))
}

// blinkTag keeps a Blink signature from colliding with a Transition whose
// parameters happen to hash equally.
const blinkTag = 0x626c696e6b // "blink"
