package machine

import (
	"context"
	"fmt"
	"io"
)

// Console models the external log sink the driver talks to.
//
// The sink starts pristine: Log prints its argument, which is all an
// ordinary log sink ever does. Capturing swaps the binding so input flows
// into the machine instead, with the pristine behavior saved aside;
// Restore puts it back, severing the machine from its input until someone
// re-captures. The sink is the sole channel through which external input
// reaches internal logic.
type Console struct {
	out      io.Writer
	bound    func(ctx context.Context, v int)
	captured bool
}

// NewConsole creates a pristine console printing to out.
func NewConsole(out io.Writer) *Console {
	c := &Console{out: out}
	c.bound = c.print
	return c
}

// Log delivers one value to whatever the sink is currently bound to.
// This is the driver's only entry point.
func (c *Console) Log(ctx context.Context, v int) {
	c.bound(ctx, v)
}

// Capture routes future input into fn and marks the sink captured.
// The pristine print behavior stays saved for Restore.
func (c *Console) Capture(fn func(ctx context.Context, v int)) {
	c.bound = fn
	c.captured = true
}

// Restore puts the pristine print behavior back.
// After Restore, input no longer reaches the machine.
func (c *Console) Restore() {
	c.bound = c.print
	c.captured = false
}

// Captured reports whether the sink currently routes into the machine.
func (c *Console) Captured() bool {
	return c.captured
}

// print is the pristine sink behavior.
func (c *Console) print(_ context.Context, v int) {
	fmt.Fprintln(c.out, v)
}
