package timezone

import "time"

// Clock supplies "now" to components that need it, so tests can pin time.
type Clock func() time.Time

// NewClock returns the application clock, reading the configured timezone.
func NewClock() Clock {
	return Now
}

// FixedClock returns a Clock frozen at t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
