package main

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/pulse"
	"github.com/gogpu/pulse/loop"
	"github.com/gogpu/pulse/platform/glfwloop"
	"github.com/gogpu/pulse/present"
	"github.com/gogpu/pulse/tree"
)

// keyEvent is the opaque event posted into the driver's queue from the
// GLFW key callback.
type keyEvent struct {
	key    glfw.Key
	action glfw.Action
}

// runWindowed opens a GLFW window and runs the loop against the real
// platform waiter until the window closes.
func runWindowed(cfg Config, root tree.Widget) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	// The demo presents on the CPU; no GL context needed.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, "pulse demo", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	queue := loop.NewQueue()
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		queue.Post(keyEvent{key: key, action: action})
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	presenter := present.NewScaling(image.Pt(fbWidth, fbHeight), nil)

	d := loop.New(root,
		loop.WithQueue(queue),
		loop.WithPresenter(presenter),
		loop.WithConstraints(tree.Exact(image.Pt(cfg.Width, cfg.Height))),
		loop.WithEventHandler(func(ev loop.Event) {
			pulse.Logger().Debug("event", "ev", fmt.Sprintf("%+v", ev))
		}),
	)

	// The loop ends through the waiter's window-closed error rather
	// than context cancellation.
	err = loop.Run(context.Background(), d, glfwloop.NewWaiter(win))
	if errors.Is(err, glfwloop.ErrWindowClosed) {
		return nil
	}
	return err
}
