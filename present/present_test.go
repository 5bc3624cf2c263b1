package present

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/pulse/tree"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestScalingPresentFlushes(t *testing.T) {
	var got *image.RGBA
	p := NewScaling(image.Pt(20, 20), func(dst *image.RGBA) error {
		got = dst
		return nil
	})

	src := solid(10, 10, color.RGBA{R: 255, A: 255})
	if err := p.Present(tree.Output{Image: src}); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	if got == nil {
		t.Fatal("flush was not called")
	}
	if b := got.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("destination bounds = %v, want 20x20", b)
	}
	// The upscaled frame keeps the source color.
	if px := got.RGBAAt(10, 10); px.R == 0 || px.A == 0 {
		t.Errorf("scaled pixel = %v, want red", px)
	}
}

func TestScalingPresentSkipsNilFrame(t *testing.T) {
	flushed := false
	p := NewScaling(image.Pt(8, 8), func(*image.RGBA) error {
		flushed = true
		return nil
	})

	if err := p.Present(tree.Output{}); err != nil {
		t.Fatalf("Present(nil frame) = %v", err)
	}
	if flushed {
		t.Error("nil frame must not be flushed")
	}
}

func TestScalingPresentPropagatesFlushError(t *testing.T) {
	sentinel := errors.New("surface lost")
	p := NewScaling(image.Pt(8, 8), func(*image.RGBA) error { return sentinel })

	err := p.Present(tree.Output{Image: solid(4, 4, color.RGBA{A: 255})})
	if !errors.Is(err, sentinel) {
		t.Errorf("Present() = %v, want flush error", err)
	}
}

func TestScalingPresentNilFlush(t *testing.T) {
	p := NewScaling(image.Pt(8, 8), nil)
	if err := p.Present(tree.Output{Image: solid(4, 4, color.RGBA{A: 255})}); err != nil {
		t.Errorf("Present() with nil flush = %v", err)
	}
}
