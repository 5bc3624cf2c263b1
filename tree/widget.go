// Package tree defines the widget contract and the traversal machinery
// that threads the cycle clock, stable identities, and snapshot access
// through a rebuild pass.
//
// A widget is stateless across cycles: it is rebuilt from scratch every
// pass and produces its visual output plus a [pulse.Request] describing
// when it next needs to be revisited. State that must survive the rebuild
// lives in the snapshot cache and is reached through the [RenderContext].
package tree

import (
	"image"

	"github.com/gogpu/pulse"
)

// Constraints bound the size a widget may occupy.
type Constraints struct {
	Min, Max image.Point
}

// Exact returns constraints that pin the widget to a single size.
func Exact(size image.Point) Constraints {
	return Constraints{Min: size, Max: size}
}

// Output is a widget's visual result for one cycle.
// Image may be nil for non-visual widgets and headless tests; the
// scheduling machinery never inspects pixels.
type Output struct {
	Image *image.RGBA
}

// Widget is evaluated once per cycle. It returns its visual output and a
// redraw request; a container must fold its children's requests into its
// own via [pulse.Aggregate] so that a single animation buried at any depth
// still drives the global redraw clock.
//
// Render must not retain the RenderContext beyond the call.
type Widget interface {
	Render(rc *RenderContext) (Output, pulse.Request, error)
}
