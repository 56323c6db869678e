package clock

import "time"

// Clocker is the time source injected wherever time matters, so tests can
// pin it to a fixed instant.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads real system time.
type TimeClocker struct{}

func New() *TimeClocker {
	return &TimeClocker{}
}

func (*TimeClocker) Now() time.Time {
	return time.Now()
}
