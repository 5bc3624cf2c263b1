package pulse

import (
	"fmt"
	"time"
)

// requestKind discriminates the Request variants.
// Numerically higher kinds are more urgent; the zero value is kindNone so
// that a zero Request asks for nothing.
type requestKind uint8

const (
	kindNone requestKind = iota
	kindAt
	kindImmediate
)

// Request describes a widget's redraw urgency for one cycle.
//
// Requests are totally ordered from most urgent to least urgent:
//
//	Immediate < At(t1) < At(t2) < None   whenever t1 < t2
//
// Aggregation over a collection of requests is min under this ordering:
// the operation is associative and commutative, and None is its identity.
// The entire scheduler depends on that single invariant.
//
// The zero value is None.
type Request struct {
	kind requestKind
	at   time.Time
}

var (
	// Immediate requests a redraw on the very next frame tick.
	Immediate = Request{kind: kindImmediate}

	// None requests no self-initiated redraw. It is the zero value.
	None = Request{}
)

// At requests a redraw no later than t. The request may be satisfied
// earlier when another widget asks for an earlier wake.
func At(t time.Time) Request {
	return Request{kind: kindAt, at: t}
}

// IsImmediate reports whether the request asks for the next frame tick.
func (r Request) IsImmediate() bool { return r.kind == kindImmediate }

// IsNone reports whether the request asks for nothing.
func (r Request) IsNone() bool { return r.kind == kindNone }

// Deadline returns the wake time of an At request.
// The second return value is false for Immediate and None.
func (r Request) Deadline() (time.Time, bool) {
	if r.kind != kindAt {
		return time.Time{}, false
	}
	return r.at, true
}

// Less reports whether r is strictly more urgent than o.
func (r Request) Less(o Request) bool {
	if r.kind != o.kind {
		return r.kind > o.kind
	}
	if r.kind == kindAt {
		return r.at.Before(o.at)
	}
	return false
}

// Min returns the more urgent of r and o.
// Two At requests with the identical timestamp are interchangeable: a
// single wake satisfies all equal-or-earlier requests.
func (r Request) Min(o Request) Request {
	if o.Less(r) {
		return o
	}
	return r
}

// Equal reports whether r and o describe the same urgency.
// At timestamps are compared with [time.Time.Equal].
func (r Request) Equal(o Request) bool {
	if r.kind != o.kind {
		return false
	}
	if r.kind == kindAt {
		return r.at.Equal(o.at)
	}
	return true
}

// String returns a readable form of the request.
func (r Request) String() string {
	switch r.kind {
	case kindImmediate:
		return "Immediate"
	case kindAt:
		return fmt.Sprintf("At(%s)", r.at.Format(time.RFC3339Nano))
	default:
		return "None"
	}
}

// Aggregate folds requests into the tree-wide minimum.
// Aggregating an empty list yields None.
func Aggregate(reqs ...Request) Request {
	agg := None
	for _, r := range reqs {
		agg = agg.Min(r)
	}
	return agg
}
