package machine

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_PristinePrints(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(out)

	c.Log(context.Background(), 7)
	c.Log(context.Background(), 0)

	assert.Equal(t, "7\n0\n", out.String())
	assert.False(t, c.Captured())
}

func TestConsole_CaptureRoutesInput(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(out)

	var got []int
	c.Capture(func(_ context.Context, v int) {
		got = append(got, v)
	})

	c.Log(context.Background(), 1)
	c.Log(context.Background(), 9)

	assert.Equal(t, []int{1, 9}, got)
	assert.Empty(t, out.String(), "captured input must not reach the pristine sink")
	assert.True(t, c.Captured())
}

func TestConsole_RestoreSeversRouting(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(out)

	calls := 0
	c.Capture(func(_ context.Context, _ int) { calls++ })
	c.Log(context.Background(), 1)

	c.Restore()
	c.Log(context.Background(), 2)

	assert.Equal(t, 1, calls, "restored sink must not forward")
	assert.Equal(t, "2\n", out.String())
	assert.False(t, c.Captured())
}

func TestConsole_RecaptureAfterRestore(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})

	c.Capture(func(_ context.Context, _ int) {})
	c.Restore()
	c.Capture(func(_ context.Context, _ int) {})

	assert.True(t, c.Captured())
}
