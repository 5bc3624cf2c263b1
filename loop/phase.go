package loop

// Phase identifies where the driver is within its cycle state machine.
// The machine is cyclic with no terminal state while the application runs.
type Phase int

const (
	// PhaseIdle means the driver is waiting for the next cycle to be
	// invoked, either for an external event or an elapsed wake time.
	PhaseIdle Phase = iota

	// PhaseUpdating means queued events are being dispatched into the
	// application.
	PhaseUpdating

	// PhaseRendering means layout and draw are running; widgets step
	// their animations and their redraw requests are collected.
	PhaseRendering

	// PhaseScheduled means the aggregate request for this cycle has been
	// computed and handed to the scheduler boundary.
	PhaseScheduled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseUpdating:
		return "Updating"
	case PhaseRendering:
		return "Rendering"
	case PhaseScheduled:
		return "Scheduled"
	default:
		return "Unknown"
	}
}
