package anim

// Curve names a built-in easing curve. Unlike the raw [Easing] function
// type, a Curve is comparable and hashable, so it can participate in a
// transition's signature.
type Curve uint8

const (
	// CurveLinear is constant velocity.
	CurveLinear Curve = iota

	// CurveInQuad accelerates from rest.
	CurveInQuad

	// CurveOutQuad decelerates to rest.
	CurveOutQuad

	// CurveInOutQuad accelerates then decelerates.
	CurveInOutQuad

	// CurveInCubic accelerates from rest, sharper than quadratic.
	CurveInCubic

	// CurveOutCubic decelerates to rest, sharper than quadratic.
	CurveOutCubic

	// CurveInOutCubic accelerates then decelerates, sharper than quadratic.
	CurveInOutCubic
)

// Ease applies the named curve to normalized time t.
func (c Curve) Ease(t float64) float64 {
	switch c {
	case CurveInQuad:
		return EaseInQuad(t)
	case CurveOutQuad:
		return EaseOutQuad(t)
	case CurveInOutQuad:
		return EaseInOutQuad(t)
	case CurveInCubic:
		return EaseInCubic(t)
	case CurveOutCubic:
		return EaseOutCubic(t)
	case CurveInOutCubic:
		return EaseInOutCubic(t)
	default:
		return Linear(t)
	}
}

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "Linear"
	case CurveInQuad:
		return "InQuad"
	case CurveOutQuad:
		return "OutQuad"
	case CurveInOutQuad:
		return "InOutQuad"
	case CurveInCubic:
		return "InCubic"
	case CurveOutCubic:
		return "OutCubic"
	case CurveInOutCubic:
		return "InOutCubic"
	default:
		return "Unknown"
	}
}
