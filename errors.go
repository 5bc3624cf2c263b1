package pulse

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicateIdentity indicates two widgets claimed the same stable
	// identity within one cycle. This is a programmer error in the widget
	// tree: it is surfaced at the point of the second claim and never
	// silently merged, since a merge would corrupt animation continuity.
	ErrDuplicateIdentity = errors.New("pulse: duplicate widget identity")

	// ErrClockRegression indicates the clock reported an instant earlier
	// than a previously observed one. This invalidates At(t) ordering and
	// is treated as a fatal environment error, not recovered locally.
	ErrClockRegression = errors.New("pulse: clock regression")
)

// DuplicateIdentityError reports the identity that was claimed twice in a
// single cycle. It unwraps to [ErrDuplicateIdentity].
type DuplicateIdentityError struct {
	Identity Identity
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("pulse: duplicate widget identity %s", e.Identity)
}

func (e *DuplicateIdentityError) Unwrap() error { return ErrDuplicateIdentity }

// ClockRegressionError reports a backwards clock reading. It unwraps to
// [ErrClockRegression].
type ClockRegressionError struct {
	// Prev is the latest instant observed before the regression.
	Prev time.Time
	// Now is the regressed reading.
	Now time.Time
}

func (e *ClockRegressionError) Error() string {
	return fmt.Sprintf("pulse: clock regressed from %s to %s",
		e.Prev.Format(time.RFC3339Nano), e.Now.Format(time.RFC3339Nano))
}

func (e *ClockRegressionError) Unwrap() error { return ErrClockRegression }
