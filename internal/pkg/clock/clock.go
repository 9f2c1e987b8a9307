package clock

import "time"

// Clock abstracts the current time so lead-time clamps, staleness checks,
// and pending-payment timeouts stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in UTC. All engine math runs in UTC and
// converts to the consultant's timezone only at the template boundary.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
