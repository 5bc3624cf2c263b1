package tree

import (
	"image"

	"golang.org/x/image/draw"
)

// ComposeVertical stacks child outputs top to bottom into a single frame.
// Nil images contribute no pixels but still occupy no height; the result
// is as wide as the widest child. An empty or fully nil input yields a nil
// Output.
func ComposeVertical(outs []Output) Output {
	width, height := 0, 0
	for _, o := range outs {
		if o.Image == nil {
			continue
		}
		b := o.Image.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
	}
	if width == 0 || height == 0 {
		return Output{}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, o := range outs {
		if o.Image == nil {
			continue
		}
		b := o.Image.Bounds()
		r := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(dst, r, o.Image, b.Min, draw.Over)
		y += b.Dy()
	}
	return Output{Image: dst}
}
