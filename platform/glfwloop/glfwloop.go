// Package glfwloop adapts the loop's wait directives onto GLFW's event
// wait primitives. It is the platform edge of the scheduler: the core
// never sleeps or polls, this package does.
//
// GLFW requires event processing on the main OS thread. Lock it before
// initializing:
//
//	func main() {
//	    runtime.LockOSThread()
//	    ...
//	}
package glfwloop

import (
	"errors"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/pulse/loop"
)

// ErrWindowClosed stops the loop when the user closes the window.
var ErrWindowClosed = errors.New("glfwloop: window closed")

// Waiter implements [loop.Waiter] on top of GLFW:
//
//   - WaitPoll  → glfw.PollEvents (run again as soon as possible)
//   - WaitUntil → glfw.WaitEventsTimeout (deadline or external event)
//   - WaitEvent → glfw.WaitEvents (block until an external event)
type Waiter struct {
	window *glfw.Window
}

// NewWaiter creates a waiter bound to a window. The window is only used
// to observe the close flag; pass nil for a windowless event loop.
func NewWaiter(win *glfw.Window) *Waiter {
	return &Waiter{window: win}
}

// Wait suspends according to the directive. Returns ErrWindowClosed once
// the bound window's close flag is set.
//
// The deadline of a WaitUntil directive is interpreted against the system
// clock, which is also what the driver reads in production.
func (w *Waiter) Wait(d loop.Directive) error {
	switch d.Wait {
	case loop.WaitPoll:
		glfw.PollEvents()
	case loop.WaitUntil:
		timeout := time.Until(d.Until)
		if timeout < 0 {
			timeout = 0
		}
		glfw.WaitEventsTimeout(timeout.Seconds())
	default:
		glfw.WaitEvents()
	}

	if w.window != nil && w.window.ShouldClose() {
		return ErrWindowClosed
	}
	return nil
}

// Wake interrupts a pending Wait from any goroutine. Call after posting
// to the driver's event queue from outside the main thread so the new
// event is picked up without waiting for the current directive to elapse.
func Wake() {
	glfw.PostEmptyEvent()
}
