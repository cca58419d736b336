package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_FrozenUntilAdvanced(t *testing.T) {
	c := NewFakeClock(100)

	assert.Equal(t, int64(100), c.Now())
	assert.Equal(t, int64(100), c.Now(), "clock should not move on its own")

	c.Advance(2)
	assert.Equal(t, int64(102), c.Now())
}

func TestFakeClock_Set(t *testing.T) {
	c := NewFakeClock(0)

	c.Set(1700000000)
	assert.Equal(t, int64(1700000000), c.Now())

	c.Advance(1)
	assert.Equal(t, int64(1700000001), c.Now())
}
