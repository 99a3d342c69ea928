package services

import "time"

// Clock supplies "now" for creation timestamps, so tests can pin it.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
