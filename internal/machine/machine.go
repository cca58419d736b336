package machine

import (
	"context"
	"log/slog"

	"github.com/hexspeak/wetsand/internal/predicate"
	"github.com/hexspeak/wetsand/internal/tamper"
)

// minSolveSeconds is the anti-automation floor: the fifth digit's predicate
// is consulted only if strictly more than this many seconds have elapsed
// since the first press of the attempt.
const minSolveSeconds = 1

// Notifier receives the externally visible celebratory side effects.
// Implemented by the CLI (prints to the terminal) and by test doubles.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) { f(message) }

// Machine drives the seven digit checks.
//
// One instance is constructed at process start and lives for the process
// lifetime; there is no explicit teardown. It bundles the process-wide
// mutable state - current binding, first-press timestamp, sink-capture
// flag - so nothing about the progression leaks into package globals.
type Machine struct {
	current    DigitState
	firstPress int64
	logStored  bool

	console  *Console
	det      *tamper.Detector
	clock    tamper.Clock
	notifier Notifier
	trap     func(context.Context, int)

	lastFailure *Failure
}

// Option allows configuration of machine parameters.
type Option func(*Machine)

// WithNotifier routes the celebratory side effects to n.
// Default: notifications are logged at Info.
func WithNotifier(n Notifier) Option {
	return func(m *Machine) {
		m.notifier = n
	}
}

// New creates a Machine over the given sink, tamper detector, and clock.
//
// The machine starts idle with the sink untouched. Call Reset once to
// capture the sink and open the attack surface.
func New(console *Console, det *tamper.Detector, clock tamper.Clock, opts ...Option) *Machine {
	m := &Machine{
		current: StateIdle,
		console: console,
		det:     det,
		clock:   clock,
		notifier: NotifierFunc(func(message string) {
			slog.Info("notification", "message", message)
		}),
		trap: predicate.RunTrap,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Current returns the externally observable binding of the Indirection
// Point. Observing how this changes under candidate digits is the designed
// weakness that makes the gate solvable without brute force.
func (m *Machine) Current() DigitState {
	return m.current
}

// Press delivers one digit to the currently bound handler.
//
// This is the single dispatch point for the Indirection Point: exactly one
// case runs per press, and only this method ever rebinds the current state.
// Press never returns feedback to the driver; the outcome is observable
// only through Current and the notifier.
func (m *Machine) Press(ctx context.Context, v int) {
	slog.Debug("press received", "state", m.current, "digit", v)

	switch m.current {
	case StateIdle, StateS1:
		m.pressFirst(ctx, v)
	case StateS2:
		m.pressChecked(ctx, StateS2, predicate.DigitTwo, StateS3, v)
	case StateS3:
		m.pressChecked(ctx, StateS3, predicate.DigitThree, StateS4, v)
	case StateS4:
		m.pressChecked(ctx, StateS4, predicate.DigitFour, StateS5, v)
	case StateS5:
		m.pressFifth(ctx, v)
	case StateS6:
		m.pressChecked(ctx, StateS6, predicate.DigitSix, StateS7, v)
	case StateS7:
		m.pressLast(ctx, v)
	}
}

// Reset returns the Indirection Point to the neutral idle binding and then
// decides what to do with the sink.
//
// Paused is checked first; a paused trap means a debugger is attached, so
// if the sink was ever captured it is restored to pristine and the machine
// goes dark. A rewritten trap gets the same treatment. Otherwise the sink
// is (re)captured: the first clean pass saves the pristine behavior and
// remembers that it did; later passes just route input back into the
// machine for a fresh attempt.
//
// Reset is total and idempotent. There is no retry policy and no limit on
// reset count - brute force is an accepted solving path for the tail
// digits.
func (m *Machine) Reset(ctx context.Context) {
	m.current = StateIdle

	if m.det.Paused() {
		if m.logStored {
			m.console.Restore()
		}
		return
	}
	if !m.det.Intact() {
		if m.logStored {
			m.console.Restore()
		}
		return
	}

	m.console.Capture(m.Press)
	m.logStored = true
}

// LastFailureForTesting returns the most recent rejected press.
// Not intended for production use; failures are deliberately invisible to
// the driver.
func (m *Machine) LastFailureForTesting() *Failure {
	return m.lastFailure
}

// SetTrapForTesting swaps the decoy trap module runner so tests can observe
// which fifth-digit outcomes execute it.
func (m *Machine) SetTrapForTesting(fn func(context.Context, int)) {
	m.trap = fn
}

// pressFirst handles input while idle: the idle-to-S1 entry.
func (m *Machine) pressFirst(ctx context.Context, v int) {
	if f := m.guard(StateS1, v); f != nil {
		m.fail(ctx, f)
		return
	}

	// The first-press timestamp is overwritten on every entry, not only
	// the first attempt; the fifth digit's gate measures from here.
	m.firstPress = m.clock.Now()

	m.advanceIf(ctx, StateS1, predicate.DigitOne, StateS2, v)
}

// pressChecked is the transition rule shared by the plain middle states:
// tamper guard, then predicate, then advance or reset.
func (m *Machine) pressChecked(ctx context.Context, s DigitState, p predicate.Predicate, next DigitState, v int) {
	if f := m.guard(s, v); f != nil {
		m.fail(ctx, f)
		return
	}
	m.advanceIf(ctx, s, p, next, v)
}

// pressFifth is the gated state. The anti-automation check runs before the
// predicate; a too-fast press forces the outcome false without ever
// consulting the check. The win notification fires here on success - the
// states beyond exist only to make that fact non-obvious.
func (m *Machine) pressFifth(ctx context.Context, v int) {
	if f := m.guard(StateS5, v); f != nil {
		m.fail(ctx, f)
		return
	}

	if m.clock.Now()-m.firstPress <= minSolveSeconds {
		m.trap(ctx, v)
		m.fail(ctx, &Failure{Code: CodeGateBlocked, State: StateS5, Input: v})
		return
	}

	ok, err := predicate.Evaluate(ctx, predicate.DigitFive, v)
	if err != nil {
		m.fail(ctx, &Failure{Code: CodeDecodeFault, State: StateS5, Input: v, Err: err})
		return
	}
	if !ok {
		m.trap(ctx, v)
		m.fail(ctx, &Failure{Code: CodeWrongDigit, State: StateS5, Input: v})
		return
	}

	m.notifier.Notify(winMessage)
	m.current = StateS6
	slog.Debug("advanced", "state", m.current)
}

// pressLast never holds the machine open: evaluate, emit the secondary
// message on a match, reset regardless. No tamper guard runs here - with
// the win already awarded there is nothing left to protect.
func (m *Machine) pressLast(ctx context.Context, v int) {
	ok, err := predicate.Evaluate(ctx, predicate.DigitSeven, v)
	if err == nil && ok {
		m.notifier.Notify(finalMessage())
		m.Reset(ctx)
		return
	}

	m.fail(ctx, &Failure{Code: CodeWrongDigit, State: StateS7, Input: v, Err: err})
}

// guard runs the tamper detector on state entry. Paused is checked before
// Intact; if paused, the intactness comparison is skipped entirely.
func (m *Machine) guard(s DigitState, v int) *Failure {
	if m.det.Paused() {
		return &Failure{Code: CodePauseDetected, State: s, Input: v}
	}
	if !m.det.Intact() {
		return &Failure{Code: CodeTamperDetected, State: s, Input: v}
	}
	return nil
}

// advanceIf evaluates p against v and either rebinds to next or resets.
func (m *Machine) advanceIf(ctx context.Context, s DigitState, p predicate.Predicate, next DigitState, v int) {
	ok, err := predicate.Evaluate(ctx, p, v)
	if err != nil {
		m.fail(ctx, &Failure{Code: CodeDecodeFault, State: s, Input: v, Err: err})
		return
	}
	if !ok {
		m.fail(ctx, &Failure{Code: CodeWrongDigit, State: s, Input: v})
		return
	}

	m.current = next
	slog.Debug("advanced", "state", m.current)
}

// fail records the rejection and collapses it into Reset. Failures are
// logged and remembered for tests but never surfaced to the driver.
func (m *Machine) fail(ctx context.Context, f *Failure) {
	m.lastFailure = f
	slog.Debug("press rejected",
		"code", f.Code,
		"state", f.State,
		"digit", f.Input,
		"error", f.Err,
	)
	m.Reset(ctx)
}
