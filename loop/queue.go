package loop

import "sync"

// Event is an opaque application or input event. The driver never
// inspects events; it only preserves their order.
type Event any

// Queue is a FIFO of events consumed at the start of each cycle.
//
// Queue is safe for concurrent use: any goroutine may Post while the
// driver drains on its own thread. Posting does not wake a blocked host
// loop by itself; wake-up belongs to the platform adapter (for GLFW,
// glfwloop.Wake).
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue { return &Queue{} }

// Post appends an event. Ordering within the queue is preserved.
func (q *Queue) Post(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// drain removes and returns all pending events in FIFO order.
func (q *Queue) drain() []Event {
	q.mu.Lock()
	evs := q.events
	q.events = nil
	q.mu.Unlock()
	return evs
}
