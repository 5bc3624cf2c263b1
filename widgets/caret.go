package widgets

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/anim"
	"github.com/gogpu/pulse/tree"
)

// Caret is a blinking text cursor. It is visible for one period and
// hidden for the next, and requests a wake At the next phase boundary —
// the classic case of a timer buried deep in a tree driving the global
// redraw clock.
type Caret struct {
	// Period is the blink half-period; zero means anim.DefaultBlinkPeriod.
	Period time.Duration
	Size   image.Point
	Color  color.RGBA

	unfocused bool // zero value is focused
}

// Render implements tree.Widget. An unfocused caret is hidden and asks
// for no redraw; it does not claim its snapshot, so blinking restarts
// from the visible phase when focus returns.
func (c *Caret) Render(rc *tree.RenderContext) (tree.Output, pulse.Request, error) {
	if c.unfocused {
		return tree.Output{Image: fill(c.Size, color.RGBA{})}, pulse.None, nil
	}

	b := anim.Blink{Period: c.Period}
	elapsed, err := rc.StepAnimation(b.Signature())
	if err != nil {
		return tree.Output{}, pulse.None, err
	}

	var img *image.RGBA
	if b.Visible(elapsed) {
		img = fill(c.Size, c.Color)
	} else {
		img = fill(c.Size, color.RGBA{})
	}
	return tree.Output{Image: img}, b.Next(rc.Now(), elapsed), nil
}

// Visible reports whether the caret is shown at the given elapsed time.
func (c *Caret) Visible(elapsed time.Duration) bool {
	return anim.Blink{Period: c.Period}.Visible(elapsed)
}

// SetFocus implements tree.Focusable. Losing focus hides the caret and
// stops its redraw requests.
func (c *Caret) SetFocus(focused bool) { c.unfocused = !focused }

// AnimationRequest implements tree.Animatable: a focused caret always
// wants the next phase boundary.
func (c *Caret) AnimationRequest(now time.Time) pulse.Request {
	if c.unfocused {
		return pulse.None
	}
	return anim.Blink{Period: c.Period}.Next(now, 0)
}
