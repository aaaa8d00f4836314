package service

import "time"

// Clock supplies the current time to anything making expiration decisions,
// so tests can pin it
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().Truncate(time.Millisecond)
}

// NewSystemClock returns a Clock backed by the wall clock, truncated to
// match the precision mongo stores
func NewSystemClock() Clock {
	return systemClock{}
}
