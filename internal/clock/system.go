package clock

import (
	"context"
	"time"
)

type SystemClock struct{}

func (SystemClock) Now(context.Context) time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant. Tests use it so issued bills carry a
// deterministic number year and stamp.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now(context.Context) time.Time {
	return f.T
}
