// Package clock lets services read the current time through an injectable
// interface so windows, streaks and recap periods are testable.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// RealClock returns the system time in UTC.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

// NewReal returns a Clock backed by the system time.
func NewReal() Clock {
	return RealClock{}
}

// NewFixed returns a Clock that always returns t.
func NewFixed(t time.Time) Clock {
	return FixedClock{T: t}
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
)
