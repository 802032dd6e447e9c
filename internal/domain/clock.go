package domain

import "time"

// Clock provides wall-clock time. Analytics take it as an explicit value so
// that the simulated cursor and real time never get confused.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the machine clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
