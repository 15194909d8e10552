package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// zonedClock reports the inner clock's instant in a fixed location so that
// calendar dates ("today") are taken in the business timezone.
type zonedClock struct {
	inner Clock
	loc   *time.Location
}

func InLocation(inner Clock, loc *time.Location) Clock {
	if loc == nil {
		return inner
	}
	return &zonedClock{inner: inner, loc: loc}
}

func (c *zonedClock) Now() time.Time {
	return c.inner.Now().In(c.loc)
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
