// Package tamper detects two analyst interventions: an attached interactive
// debugger (by timing the debugger-trap hook) and a rewritten trap (by
// comparing the hook's live source text against the expected constant).
package tamper

import (
	"log/slog"

	"github.com/hexspeak/wetsand/internal/hook"
)

// Detector checks whether the debugger-trap hook still behaves and reads
// as originally shipped.
//
// Ordering contract: callers that use both checks must call Paused first.
// If Paused reports true, Intact is skipped entirely and the caller resets
// immediately - the intactness comparison is pointless while a debugger is
// driving execution.
type Detector struct {
	hooks    *hook.Registry
	clock    Clock
	expected string
}

// New creates a Detector over the given hook registry.
// The expected source text is the baked-in default registration.
func New(hooks *hook.Registry, clock Clock) *Detector {
	return &Detector{
		hooks:    hooks,
		clock:    clock,
		expected: hook.DefaultSource,
	}
}

// Paused invokes the trap hook and reports whether execution blocked across
// at least one full second boundary.
//
// An interactive debugger that intercepts the trap holds the program until
// the analyst clicks through, which takes well over a second. The trap is a
// no-op otherwise, so the delta is 0 in normal runs.
func (d *Detector) Paused() bool {
	before := d.clock.Now()
	d.hooks.Invoke()
	after := d.clock.Now()

	if after-before >= 1 {
		slog.Debug("pause detected around trap hook",
			"elapsed_seconds", after-before,
		)
		return true
	}
	return false
}

// Intact compares the hook's live source text byte-for-byte against the
// expected text. Any edit - even a single character - fails the comparison.
func (d *Detector) Intact() bool {
	live := d.hooks.Source()
	if live != d.expected {
		slog.Debug("trap hook source mismatch",
			"live_len", len(live),
			"expected_len", len(d.expected),
		)
		return false
	}
	return true
}
