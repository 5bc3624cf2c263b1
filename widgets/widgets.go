// Package widgets provides a small set of stock widgets built on the
// scheduling core: a blinking caret, scalar transitions, and a vertical
// container. They double as reference implementations of the widget
// contract — how to derive a signature, step an animation, and fold child
// requests.
package widgets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/tree"
)

// fill paints a solid rectangle. Pixel content is incidental to the
// scheduling core; widgets produce it only so presenters have frames.
func fill(size image.Point, c color.RGBA) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Static is an inert leaf: a solid block that never requests a redraw.
type Static struct {
	Size  image.Point
	Color color.RGBA
}

// Render implements tree.Widget.
func (s *Static) Render(*tree.RenderContext) (tree.Output, pulse.Request, error) {
	return tree.Output{Image: fill(s.Size, s.Color)}, pulse.None, nil
}

// Column stacks its children vertically under structural identities and
// aggregates their redraw requests. A column with no children yields None.
type Column struct {
	Children []tree.Widget
}

// Render implements tree.Widget.
func (c *Column) Render(rc *tree.RenderContext) (tree.Output, pulse.Request, error) {
	outs := make([]tree.Output, 0, len(c.Children))
	reqs := make([]pulse.Request, 0, len(c.Children))
	for i, ch := range c.Children {
		var (
			out tree.Output
			req pulse.Request
			err error
		)
		// A Keyed child is identified by its key alone, not its index, so
		// its state survives sibling reordering.
		if k, ok := ch.(*Keyed); ok {
			out, req, err = rc.RenderKeyed(k.Key, k.Child, rc.Constraints())
		} else {
			out, req, err = rc.RenderChild(i, ch, rc.Constraints())
		}
		if err != nil {
			return tree.Output{}, pulse.None, err
		}
		outs = append(outs, out)
		reqs = append(reqs, req)
	}
	return tree.ComposeVertical(outs), pulse.Aggregate(reqs...), nil
}

// Keyed wraps a child under an explicit identity key so its snapshot
// survives sibling reordering.
type Keyed struct {
	Key   string
	Child tree.Widget
}

// Render implements tree.Widget.
func (k *Keyed) Render(rc *tree.RenderContext) (tree.Output, pulse.Request, error) {
	return rc.RenderKeyed(k.Key, k.Child, rc.Constraints())
}

// Button is a clickable block. It demonstrates the Clickable capability;
// it never animates.
type Button struct {
	Size    image.Point
	Color   color.RGBA
	OnClick func()
}

// Render implements tree.Widget.
func (b *Button) Render(*tree.RenderContext) (tree.Output, pulse.Request, error) {
	return tree.Output{Image: fill(b.Size, b.Color)}, pulse.None, nil
}

// Click implements tree.Clickable.
func (b *Button) Click(image.Point) {
	if b.OnClick != nil {
		b.OnClick()
	}
}
