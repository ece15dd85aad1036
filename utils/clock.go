package utils

import "time"

// Clock abstracts time.Now so that lifecycle decisions and the sweeper
// can be driven with a fixed instant in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
