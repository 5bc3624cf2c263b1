package pulse

import (
	"math/rand"
	"testing"
	"time"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRequestZeroValueIsNone(t *testing.T) {
	var r Request
	if !r.IsNone() {
		t.Error("zero Request should be None")
	}
	if !r.Equal(None) {
		t.Error("zero Request should equal None")
	}
}

func TestRequestOrdering(t *testing.T) {
	t1 := base
	t2 := base.Add(time.Second)

	// Immediate < At(t1) < At(t2) < None whenever t1 < t2.
	ordered := []Request{Immediate, At(t1), At(t2), None}
	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Less(ordered[j])
			want := i < j
			if got != want {
				t.Errorf("%s.Less(%s) = %v, want %v", ordered[i], ordered[j], got, want)
			}
		}
	}
}

func TestRequestMin(t *testing.T) {
	t1 := base
	t2 := base.Add(time.Second)

	tests := []struct {
		name string
		a, b Request
		want Request
	}{
		{"immediate wins over at", Immediate, At(t1), Immediate},
		{"at wins over none", At(t1), None, At(t1)},
		{"earlier at wins", At(t1), At(t2), At(t1)},
		{"none is identity", None, None, None},
		{"equal at timestamps", At(t1), At(t1), At(t1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Min(tt.b)
			if !got.Equal(tt.want) {
				t.Errorf("Min(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
			// Commutativity.
			if flip := tt.b.Min(tt.a); !flip.Equal(got) {
				t.Errorf("Min not commutative: %s vs %s", got, flip)
			}
		})
	}
}

func TestRequestMinAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := []Request{
		Immediate,
		None,
		At(base),
		At(base.Add(100 * time.Millisecond)),
		At(base.Add(time.Second)),
	}

	for i := 0; i < 100; i++ {
		a := pool[rng.Intn(len(pool))]
		b := pool[rng.Intn(len(pool))]
		c := pool[rng.Intn(len(pool))]

		left := a.Min(b).Min(c)
		right := a.Min(b.Min(c))
		if !left.Equal(right) {
			t.Fatalf("Min not associative for (%s, %s, %s): %s vs %s", a, b, c, left, right)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(); !got.IsNone() {
		t.Errorf("Aggregate() = %s, want None", got)
	}
}

func TestAggregateSiblings(t *testing.T) {
	// One sibling requests At(t=100), the other Immediate:
	// the aggregate must be Immediate.
	got := Aggregate(At(base.Add(100*time.Millisecond)), Immediate)
	if !got.IsImmediate() {
		t.Errorf("Aggregate(At, Immediate) = %s, want Immediate", got)
	}
}

func TestAggregateEqualsMinOfAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		n := rng.Intn(10)
		reqs := make([]Request, n)
		for i := range reqs {
			switch rng.Intn(3) {
			case 0:
				reqs[i] = Immediate
			case 1:
				reqs[i] = At(base.Add(time.Duration(rng.Intn(5000)) * time.Millisecond))
			default:
				reqs[i] = None
			}
		}

		want := None
		for _, r := range reqs {
			if r.Less(want) {
				want = r
			}
		}
		if got := Aggregate(reqs...); !got.Equal(want) {
			t.Fatalf("Aggregate(%v) = %s, want %s", reqs, got, want)
		}
	}
}

func TestRequestDeadline(t *testing.T) {
	if _, ok := Immediate.Deadline(); ok {
		t.Error("Immediate should have no deadline")
	}
	if _, ok := None.Deadline(); ok {
		t.Error("None should have no deadline")
	}
	d, ok := At(base).Deadline()
	if !ok || !d.Equal(base) {
		t.Errorf("At(base).Deadline() = %v, %v", d, ok)
	}
}

func TestRequestString(t *testing.T) {
	if Immediate.String() != "Immediate" {
		t.Errorf("Immediate.String() = %q", Immediate.String())
	}
	if None.String() != "None" {
		t.Errorf("None.String() = %q", None.String())
	}
	if s := At(base).String(); s == "Immediate" || s == "None" {
		t.Errorf("At(base).String() = %q", s)
	}
}

func BenchmarkAggregate(b *testing.B) {
	reqs := make([]Request, 64)
	for i := range reqs {
		reqs[i] = At(base.Add(time.Duration(i) * time.Millisecond))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(reqs...)
	}
}
