package data

import "time"

// TimeProvider abstracts the clock so repositories can be driven with a
// controllable time source in tests. Repositories stamp created_at and
// updated_at themselves instead of relying on database defaults.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current system time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
