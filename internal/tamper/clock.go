package tamper

import "time"

// Clock reports wall-clock time at second granularity.
//
// Second granularity is a design choice, not a limitation to fix: the pause
// check only wants to know whether execution blocked across a full second
// boundary. Sub-second pauses are an intentional blind spot.
//
// Implemented by SystemClock (production) and testutil.FakeClock (tests).
type Clock interface {
	Now() int64
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current Unix time in seconds.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
