package machine

import (
	"errors"
	"fmt"
)

// FailureCode categorizes why a press failed to advance the machine.
type FailureCode string

const (
	// CodeWrongDigit indicates the state's predicate rejected the input.
	CodeWrongDigit FailureCode = "WRONG_DIGIT"

	// CodePauseDetected indicates the trap hook blocked across a second
	// boundary (an interactive debugger clicked through it).
	CodePauseDetected FailureCode = "PAUSE_DETECTED"

	// CodeTamperDetected indicates the trap hook's live source text no
	// longer matches the expected text.
	CodeTamperDetected FailureCode = "TAMPER_DETECTED"

	// CodeDecodeFault indicates a bytecode predicate failed to decode,
	// instantiate, or execute.
	CodeDecodeFault FailureCode = "DECODE_FAULT"

	// CodeGateBlocked indicates the fifth digit arrived before the
	// minimum elapsed time since the first press.
	CodeGateBlocked FailureCode = "AUTOMATION_GATE_BLOCKED"
)

// Failure records a rejected press.
//
// Every failure is handled identically: it collapses into Reset and is
// never surfaced to the driver - the only externally visible consequence is
// which handler the Indirection Point ends up bound to. Failure values
// exist for structured logging and for tests.
type Failure struct {
	Code  FailureCode
	State DigitState
	Input int
	Err   error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s at %s (input=%d): %v", f.Code, f.State, f.Input, f.Err)
	}
	return fmt.Sprintf("%s at %s (input=%d)", f.Code, f.State, f.Input)
}

// Unwrap exposes the underlying cause, if any.
func (f *Failure) Unwrap() error {
	return f.Err
}

// CodeOf extracts the failure code from an error chain.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) (FailureCode, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code, true
	}
	return "", false
}

// IsGateBlocked returns true if the error is an anti-automation gate
// rejection.
func IsGateBlocked(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeGateBlocked
}

// IsTamperFailure returns true for either tamper taxonomy code: a paused
// trap or a rewritten trap.
func IsTamperFailure(err error) bool {
	code, ok := CodeOf(err)
	return ok && (code == CodePauseDetected || code == CodeTamperDetected)
}
