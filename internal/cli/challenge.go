package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hexspeak/wetsand/internal/hook"
	"github.com/hexspeak/wetsand/internal/machine"
	"github.com/hexspeak/wetsand/internal/tamper"
)

// challenge bundles one process-lifetime instance of the gate: the sink the
// driver talks to, the machine behind it, and the hook registry the tamper
// detector watches.
type challenge struct {
	console *machine.Console
	m       *machine.Machine
	hooks   *hook.Registry
}

// newChallenge constructs and arms the gate. The initial Reset captures the
// sink before the first press reaches it.
func newChallenge(out io.Writer, notify machine.Notifier) *challenge {
	hooks := hook.NewRegistry()
	clock := tamper.SystemClock{}
	console := machine.NewConsole(out)

	m := machine.New(console, tamper.New(hooks, clock), clock,
		machine.WithNotifier(notify))
	m.Reset(context.Background())

	return &challenge{console: console, m: m, hooks: hooks}
}

// parseDigit accepts exactly one character in 0-9.
func parseDigit(s string) (int, error) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("not a digit: %q", s)
	}
	return int(s[0] - '0'), nil
}
