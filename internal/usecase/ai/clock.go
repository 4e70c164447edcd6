package ai

import "time"

// Clock lets tests pin the upload timestamp
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
