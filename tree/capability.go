package tree

import (
	"image"
	"time"

	"github.com/gogpu/pulse"
)

// Capability interfaces. A widget exposes the subset it supports, and
// traversal dispatches per capability rather than per concrete type.

// Clickable handles pointer activation.
type Clickable interface {
	Widget
	Click(pt image.Point)
}

// Focusable participates in keyboard focus.
type Focusable interface {
	Widget
	SetFocus(focused bool)
}

// Editable accepts text input.
type Editable interface {
	Widget
	InsertText(s string)
}

// Animatable reports whether the widget would currently request a redraw
// on its own, without rendering it.
type Animatable interface {
	Widget
	AnimationRequest(now time.Time) pulse.Request
}

// CapabilityVisitor receives the capabilities a widget supports. Nil
// fields are skipped.
type CapabilityVisitor struct {
	Clickable  func(Clickable)
	Focusable  func(Focusable)
	Editable   func(Editable)
	Animatable func(Animatable)
}

// VisitCapabilities dispatches w to each visitor field whose capability w
// supports.
func VisitCapabilities(w Widget, v CapabilityVisitor) {
	if c, ok := w.(Clickable); ok && v.Clickable != nil {
		v.Clickable(c)
	}
	if f, ok := w.(Focusable); ok && v.Focusable != nil {
		v.Focusable(f)
	}
	if e, ok := w.(Editable); ok && v.Editable != nil {
		v.Editable(e)
	}
	if a, ok := w.(Animatable); ok && v.Animatable != nil {
		v.Animatable(a)
	}
}
