// Package pulse provides the animation and redraw scheduling core for a
// declarative widget toolkit.
//
// # Overview
//
// pulse answers one question on every pass over a widget tree: when does the
// tree need to be revisited next? Each widget reports a [Request] alongside
// its visual output; requests are folded into a single tree-wide minimum and
// handed to the hosting event loop, which sleeps, polls, or waits on a timer
// accordingly. Per-widget animation state survives the otherwise stateless
// rebuild cycle through a snapshot cache keyed by stable widget identity.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pulse"
//	    "github.com/gogpu/pulse/loop"
//	)
//
//	d := loop.New(root, loop.WithClock(pulse.SystemClock()))
//	req, err := d.RunCycle()
//	// req tells the host loop when to run the next cycle.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Request, Clock, Identity (this package)
//   - snapshot: per-widget carry-over state across rebuild cycles
//   - anim: easing curves, blink phases, value transitions
//   - tree: the widget contract and traversal helpers
//   - loop: the cycle driver and scheduler boundary
//   - platform/glfwloop: GLFW-backed wait adapter
//
// # Scheduling Model
//
// Single-threaded and cooperative. One cycle runs event intake, render, and
// aggregation strictly in order with nothing suspending mid-cycle; the only
// suspension point is between cycles, inside the host's wait adapter. The
// clock is read once per cycle so every widget observes the same now.
package pulse

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
