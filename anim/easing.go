// Package anim provides widget-local animation helpers: easing curves,
// blink phases, and scalar transitions.
//
// The package computes values from an elapsed duration; it never reads a
// clock itself. The elapsed duration comes from the snapshot cache's
// StepAnimation, which guarantees continuity across rebuild cycles.
package anim

// Easing maps normalized time t in [0, 1] to a progress value.
// Implementations clamp out-of-range input.
type Easing func(t float64) float64

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Linear is the identity easing.
func Linear(t float64) float64 { return clamp01(t) }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return t * (2 - t)
}

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero velocity, more sharply than quadratic.
func EaseInCubic(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

// EaseOutCubic decelerates to zero velocity, more sharply than quadratic.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t) - 1
	return t*t*t + 1
}

// EaseInOutCubic accelerates until halfway, then decelerates.
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// Lerp linearly interpolates between from and to at progress t.
// t is not clamped; pass it through an Easing first.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
