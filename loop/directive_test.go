package loop

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pulse"
)

func TestForMapping(t *testing.T) {
	now := t0
	later := now.Add(time.Second)
	earlier := now.Add(-time.Second)

	tests := []struct {
		name string
		req  pulse.Request
		want Directive
	}{
		{"immediate polls", pulse.Immediate, Directive{Wait: WaitPoll}},
		{"none blocks for events", pulse.None, Directive{Wait: WaitEvent}},
		{"future at waits until", pulse.At(later), Directive{Wait: WaitUntil, Until: later}},
		{"past at clamps to now", pulse.At(earlier), Directive{Wait: WaitUntil, Until: now}},
		{"at exactly now", pulse.At(now), Directive{Wait: WaitUntil, Until: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := For(tt.req, now)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("For(%s) mismatch (-want +got):\n%s", tt.req, diff)
			}
		})
	}
}

func TestDirectiveString(t *testing.T) {
	if s := (Directive{Wait: WaitPoll}).String(); s != "Poll" {
		t.Errorf("Poll String() = %q", s)
	}
	if s := (Directive{Wait: WaitEvent}).String(); s != "Event" {
		t.Errorf("Event String() = %q", s)
	}
	d := Directive{Wait: WaitUntil, Until: t0}
	if s := d.String(); s == "Until" || s == "Unknown" {
		t.Errorf("Until String() should include the deadline, got %q", s)
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseIdle:      "Idle",
		PhaseUpdating:  "Updating",
		PhaseRendering: "Rendering",
		PhaseScheduled: "Scheduled",
		Phase(99):      "Unknown",
	}
	for p, want := range names {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		q.Post(i)
	}
	if q.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", q.Len())
	}

	evs := q.drain()
	for i, ev := range evs {
		if ev.(int) != i {
			t.Fatalf("order broken at %d: %v", i, evs)
		}
	}
	if q.Len() != 0 {
		t.Error("queue not empty after drain")
	}
	if got := q.drain(); len(got) != 0 {
		t.Errorf("second drain returned %d events, want 0", len(got))
	}
}

func TestQueueConcurrentPost(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	const producers = 8
	const perProducer = 100

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Post(i)
			}
		}()
	}
	wg.Wait()

	if q.Len() != producers*perProducer {
		t.Errorf("Len() = %d, want %d", q.Len(), producers*perProducer)
	}
}
