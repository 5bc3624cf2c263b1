// Command pulse-demo drives a small animated widget tree through the
// scheduling core: a blinking caret, a width transition, and a fading
// block stacked in a column.
//
// In headless mode (the default) it runs a fixed number of cycles with a
// manual clock and logs each cycle's aggregate request and wait
// directive. With headless disabled it opens a GLFW window and lets the
// platform waiter translate the directives into real waits.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/anim"
	"github.com/gogpu/pulse/loop"
	"github.com/gogpu/pulse/tree"
	"github.com/gogpu/pulse/widgets"
)

func main() {
	runtime.LockOSThread()

	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)

	root := demoTree(cfg)
	if cfg.Headless {
		if err := runHeadless(cfg, root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if err := runWindowed(cfg, root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging enables pulse logging. Text output goes to stderr only
// when it is a terminal; otherwise logs stay structured-silent unless
// piped deliberately.
func setupLogging(level string) {
	var lv slog.Level
	switch level {
	case "debug":
		lv = slog.LevelDebug
	case "warn":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		lv = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lv}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	pulse.SetLogger(slog.New(handler))
}

// demoTree builds the animated column all modes share.
func demoTree(cfg Config) tree.Widget {
	return &widgets.Column{Children: []tree.Widget{
		&widgets.Keyed{Key: "caret", Child: &widgets.Caret{
			Period: 500 * time.Millisecond,
			Size:   image.Pt(2, 24),
			Color:  color.RGBA{R: 235, G: 235, B: 235, A: 255},
		}},
		&widgets.Resize{
			FromWidth: 10,
			ToWidth:   float64(cfg.Width) - 20,
			Height:    24,
			Duration:  1500 * time.Millisecond,
			Curve:     anim.CurveInOutQuad,
			Color:     color.RGBA{R: 80, G: 160, B: 240, A: 255},
		},
		&widgets.Fade{
			From:     1,
			To:       0.1,
			Duration: 2 * time.Second,
			Curve:    anim.CurveOutCubic,
			Size:     image.Pt(120, 24),
			Color:    color.RGBA{R: 240, G: 120, B: 80},
		},
	}}
}

// runHeadless drives cycles with a manual clock, advancing it the way a
// host loop would honor each directive.
func runHeadless(cfg Config, root tree.Widget) error {
	log := pulse.Logger()
	clock := pulse.NewManualClock(time.Now())
	d := loop.New(root,
		loop.WithClock(clock),
		loop.WithConstraints(tree.Exact(image.Pt(cfg.Width, cfg.Height))),
	)

	for i := 0; i < cfg.Cycles; i++ {
		req, err := d.RunCycle()
		if err != nil {
			return err
		}
		dir := loop.For(req, clock.Now())
		log.Info("cycle", "n", d.Cycles(), "request", req.String(), "directive", dir.String())

		switch dir.Wait {
		case loop.WaitPoll:
			// A 60Hz display would call back roughly every 16ms.
			clock.Advance(16 * time.Millisecond)
		case loop.WaitUntil:
			clock.Set(dir.Until)
		default:
			// Nothing will ever wake an eventless headless run.
			log.Info("tree is quiescent, stopping")
			return nil
		}
	}
	return nil
}
