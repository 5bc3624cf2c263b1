package widgets

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/anim"
	"github.com/gogpu/pulse/tree"
)

// Resize is a block animating its width between two values. Changing any
// parameter mid-flight restarts the run; an unchanged widget continues
// from its origin across rebuilds.
type Resize struct {
	FromWidth float64
	ToWidth   float64
	Height    int
	Duration  time.Duration
	Curve     anim.Curve
	Color     color.RGBA
}

// Render implements tree.Widget.
func (r *Resize) Render(rc *tree.RenderContext) (tree.Output, pulse.Request, error) {
	tr := anim.Transition{From: r.FromWidth, To: r.ToWidth, Duration: r.Duration, Curve: r.Curve}
	elapsed, err := rc.StepAnimation(tr.Signature())
	if err != nil {
		return tree.Output{}, pulse.None, err
	}

	width := int(math.Round(tr.Value(elapsed)))
	img := fill(image.Pt(width, r.Height), r.Color)
	return tree.Output{Image: img}, tr.Request(elapsed), nil
}

// Width returns the interpolated width at the given elapsed time.
func (r *Resize) Width(elapsed time.Duration) float64 {
	tr := anim.Transition{From: r.FromWidth, To: r.ToWidth, Duration: r.Duration, Curve: r.Curve}
	return tr.Value(elapsed)
}

// Fade is a block animating its opacity between two values.
type Fade struct {
	From     float64
	To       float64
	Duration time.Duration
	Curve    anim.Curve
	Size     image.Point
	Color    color.RGBA
}

// Render implements tree.Widget.
func (f *Fade) Render(rc *tree.RenderContext) (tree.Output, pulse.Request, error) {
	tr := anim.Transition{From: f.From, To: f.To, Duration: f.Duration, Curve: f.Curve}
	elapsed, err := rc.StepAnimation(tr.Signature())
	if err != nil {
		return tree.Output{}, pulse.None, err
	}

	alpha := tr.Value(elapsed)
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c := f.Color
	c.A = uint8(math.Round(alpha * 255))
	return tree.Output{Image: fill(f.Size, c)}, tr.Request(elapsed), nil
}
