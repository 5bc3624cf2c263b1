// Package present flushes composed frames to an output surface.
package present

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pulse/tree"
)

// FlushFunc delivers a finished destination buffer to the surface — a
// window blit, an encoder, or a test capture.
type FlushFunc func(*image.RGBA) error

// Scaling is a [loop.Presenter] that scales the composed root frame into
// a fixed destination buffer, e.g. for HiDPI surfaces whose pixel size
// differs from the logical frame size.
type Scaling struct {
	dst    *image.RGBA
	scaler draw.Scaler
	flush  FlushFunc
}

// NewScaling creates a presenter targeting a destination buffer of the
// given size. A nil flush discards frames after scaling.
func NewScaling(size image.Point, flush FlushFunc) *Scaling {
	return &Scaling{
		dst:    image.NewRGBA(image.Rect(0, 0, size.X, size.Y)),
		scaler: draw.ApproxBiLinear,
		flush:  flush,
	}
}

// Present scales the output into the destination buffer and flushes it.
// A nil frame (non-visual cycle) is skipped without flushing.
func (p *Scaling) Present(out tree.Output) error {
	if out.Image == nil {
		return nil
	}
	p.scaler.Scale(p.dst, p.dst.Bounds(), out.Image, out.Image.Bounds(), draw.Src, nil)
	if p.flush == nil {
		return nil
	}
	return p.flush(p.dst)
}
