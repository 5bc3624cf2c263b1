package widgets

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/loop"
	"github.com/gogpu/pulse/tree"
)

var (
	t0    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestCaretBlinkCycle(t *testing.T) {
	// A 500ms caret observed at t=0, 250, 500, 750ms must be visible,
	// visible, hidden, hidden, and must request At(next 500ms boundary)
	// at each sample.
	clock := pulse.NewManualClock(t0)
	caret := &Caret{Period: 500 * time.Millisecond, Size: image.Pt(2, 16), Color: white}
	d := loop.New(caret, loop.WithClock(clock))

	samples := []struct {
		at      time.Duration
		visible bool
		next    time.Duration
	}{
		{0, true, 500 * time.Millisecond},
		{250 * time.Millisecond, true, 500 * time.Millisecond},
		{500 * time.Millisecond, false, 1000 * time.Millisecond},
		{750 * time.Millisecond, false, 1000 * time.Millisecond},
	}

	for _, s := range samples {
		clock.Set(t0.Add(s.at))
		req, err := d.RunCycle()
		if err != nil {
			t.Fatalf("t=%v: %v", s.at, err)
		}

		deadline, ok := req.Deadline()
		if !ok {
			t.Fatalf("t=%v: request = %s, want At", s.at, req)
		}
		if want := t0.Add(s.next); !deadline.Equal(want) {
			t.Errorf("t=%v: wake = %v, want %v", s.at, deadline, want)
		}

		if got := caret.Visible(s.at); got != s.visible {
			t.Errorf("t=%v: visible = %v, want %v", s.at, got, s.visible)
		}
	}
}

func TestCaretPixelsFollowPhase(t *testing.T) {
	clock := pulse.NewManualClock(t0)
	caret := &Caret{Period: 500 * time.Millisecond, Size: image.Pt(2, 16), Color: white}

	var frame *image.RGBA
	d := loop.New(caret,
		loop.WithClock(clock),
		loop.WithPresenter(presenterFunc(func(out tree.Output) error {
			frame = out.Image
			return nil
		})),
	)

	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}
	if frame == nil {
		t.Fatal("no frame presented")
	}
	if a := frame.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("visible caret alpha = %d, want 255", a)
	}

	clock.Set(t0.Add(600 * time.Millisecond))
	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}
	if a := frame.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("hidden caret alpha = %d, want 0", a)
	}
}

func TestCaretFocus(t *testing.T) {
	clock := pulse.NewManualClock(t0)
	caret := &Caret{Period: 500 * time.Millisecond, Size: image.Pt(2, 16), Color: white}

	var frame *image.RGBA
	d := loop.New(caret,
		loop.WithClock(clock),
		loop.WithPresenter(presenterFunc(func(out tree.Output) error {
			frame = out.Image
			return nil
		})),
	)

	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}

	// Losing focus hides the caret and stops it driving the redraw clock.
	caret.SetFocus(false)
	clock.Set(t0.Add(100 * time.Millisecond))
	req, err := d.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if !req.IsNone() {
		t.Errorf("unfocused caret request = %s, want None", req)
	}
	if a := frame.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("unfocused caret alpha = %d, want 0", a)
	}

	// Refocus: the blink restarts from the visible phase, mid-period.
	caret.SetFocus(true)
	clock.Set(t0.Add(850 * time.Millisecond))
	req, err = d.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if a := frame.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("refocused caret alpha = %d, want 255", a)
	}
	deadline, ok := req.Deadline()
	if !ok {
		t.Fatalf("refocused caret request = %s, want At", req)
	}
	if want := t0.Add(1350 * time.Millisecond); !deadline.Equal(want) {
		t.Errorf("wake after refocus = %v, want %v (fresh origin)", deadline, want)
	}
}

type presenterFunc func(tree.Output) error

func (f presenterFunc) Present(out tree.Output) error { return f(out) }

func TestResizeInterpolation(t *testing.T) {
	// Width animating 10 → 100 over 1000ms, sampled at 500ms with linear
	// easing, must report 55.
	clock := pulse.NewManualClock(t0)
	r := &Resize{FromWidth: 10, ToWidth: 100, Height: 4, Duration: time.Second, Color: white}

	var frame *image.RGBA
	d := loop.New(r,
		loop.WithClock(clock),
		loop.WithPresenter(presenterFunc(func(out tree.Output) error {
			frame = out.Image
			return nil
		})),
	)

	req, err := d.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if !req.IsImmediate() {
		t.Errorf("running transition request = %s, want Immediate", req)
	}
	if w := frame.Bounds().Dx(); w != 10 {
		t.Errorf("width at t=0 is %d, want 10", w)
	}

	clock.Set(t0.Add(500 * time.Millisecond))
	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}
	if w := frame.Bounds().Dx(); w != 55 {
		t.Errorf("width at t=500ms is %d, want 55", w)
	}

	clock.Set(t0.Add(time.Second))
	req, err = d.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if w := frame.Bounds().Dx(); w != 100 {
		t.Errorf("width at t=1s is %d, want 100", w)
	}
	if !req.IsNone() {
		t.Errorf("finished transition request = %s, want None", req)
	}
}

func TestResizeRestartOnParameterChange(t *testing.T) {
	clock := pulse.NewManualClock(t0)
	r := &Resize{FromWidth: 10, ToWidth: 100, Height: 4, Duration: time.Second, Color: white}

	var frame *image.RGBA
	d := loop.New(r,
		loop.WithClock(clock),
		loop.WithPresenter(presenterFunc(func(out tree.Output) error {
			frame = out.Image
			return nil
		})),
	)

	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}

	// Halfway through, the target changes: a new logical animation. The
	// signature mismatch restarts the run, so elapsed is zero and the
	// width is back at From rather than jumping mid-flight.
	clock.Set(t0.Add(500 * time.Millisecond))
	r.ToWidth = 200
	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}
	if w := frame.Bounds().Dx(); w != 10 {
		t.Errorf("width after restart = %d, want 10", w)
	}
}

func TestColumnAggregatesChildren(t *testing.T) {
	// One child asks At(+100ms), a sibling asks Immediate: the column
	// must report Immediate.
	clock := pulse.NewManualClock(t0)
	col := &Column{Children: []tree.Widget{
		&Caret{Period: 100 * time.Millisecond, Size: image.Pt(2, 16), Color: white},
		&Resize{FromWidth: 10, ToWidth: 100, Height: 4, Duration: time.Second, Color: white},
		&Static{Size: image.Pt(50, 10), Color: white},
	}}
	d := loop.New(col, loop.WithClock(clock))

	req, err := d.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if !req.IsImmediate() {
		t.Errorf("aggregate = %s, want Immediate", req)
	}
}

func TestColumnComposesFrames(t *testing.T) {
	clock := pulse.NewManualClock(t0)
	col := &Column{Children: []tree.Widget{
		&Static{Size: image.Pt(30, 10), Color: white},
		&Static{Size: image.Pt(50, 20), Color: white},
	}}

	var frame *image.RGBA
	d := loop.New(col,
		loop.WithClock(clock),
		loop.WithPresenter(presenterFunc(func(out tree.Output) error {
			frame = out.Image
			return nil
		})),
	)
	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}
	if frame == nil {
		t.Fatal("no frame presented")
	}
	if b := frame.Bounds(); b.Dx() != 50 || b.Dy() != 30 {
		t.Errorf("composed frame = %v, want 50x30", b)
	}
}

func TestKeyedSurvivesReorder(t *testing.T) {
	clock := pulse.NewManualClock(t0)
	caret := &Caret{Period: 500 * time.Millisecond, Size: image.Pt(2, 16), Color: white}
	block := &Static{Size: image.Pt(10, 10), Color: white}

	before := &Column{Children: []tree.Widget{
		&Keyed{Key: "caret", Child: caret},
		&Keyed{Key: "block", Child: block},
	}}
	after := &Column{Children: []tree.Widget{
		&Keyed{Key: "block", Child: block},
		&Keyed{Key: "caret", Child: caret},
	}}

	d := loop.New(before, loop.WithClock(clock))
	if _, err := d.RunCycle(); err != nil {
		t.Fatal(err)
	}

	// Reordered tree, same keys: the caret keeps its origin, so the next
	// wake is still the boundary measured from t0.
	clock.Set(t0.Add(250 * time.Millisecond))
	d2 := loop.New(after, loop.WithClock(clock), loop.WithCache(d.Cache()))
	req, err := d2.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	deadline, ok := req.Deadline()
	if !ok {
		t.Fatalf("request = %s, want At", req)
	}
	if want := t0.Add(500 * time.Millisecond); !deadline.Equal(want) {
		t.Errorf("wake after reorder = %v, want %v (continuity via key)", deadline, want)
	}
}

func TestButtonCapability(t *testing.T) {
	clicked := false
	b := &Button{Size: image.Pt(10, 10), Color: white, OnClick: func() { clicked = true }}

	tree.VisitCapabilities(b, tree.CapabilityVisitor{
		Clickable: func(c tree.Clickable) { c.Click(image.Pt(5, 5)) },
	})
	if !clicked {
		t.Error("click was not dispatched through the capability visitor")
	}
}
