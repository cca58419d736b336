// Package testutil provides deterministic test doubles shared across
// packages.
package testutil

import "sync"

// FakeClock implements tamper.Clock with manually advanced seconds.
//
// Unlike tamper.SystemClock, FakeClock only moves when a test tells it to.
// This makes the pause check and the anti-automation gate fully
// deterministic: a test advances the clock to simulate elapsed wall time,
// including from inside a hook function to simulate a debugger pause.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FakeClock struct {
	mu  sync.Mutex
	now int64
}

// NewFakeClock creates a clock frozen at the given Unix second.
func NewFakeClock(start int64) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current frozen time in Unix seconds.
func (c *FakeClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by the given number of seconds.
func (c *FakeClock) Advance(seconds int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += seconds
}

// Set moves the clock to an absolute Unix second.
func (c *FakeClock) Set(seconds int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = seconds
}
