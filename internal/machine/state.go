package machine

import "fmt"

// DigitState identifies which handler the Indirection Point currently
// routes input to.
//
// StateIdle is the neutral, non-advancing binding. A press while idle
// performs the idle-to-S1 entry inside that one call: the first-press
// timestamp is stamped and the first digit evaluated, so StateS1 is never
// stored between presses - it exists to label the first evaluation in logs
// and failures.
type DigitState int

const (
	StateIdle DigitState = iota
	StateS1
	StateS2
	StateS3
	StateS4
	StateS5
	StateS6
	StateS7
)

// String returns a short name for logging.
func (s DigitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateS1, StateS2, StateS3, StateS4, StateS5, StateS6, StateS7:
		return fmt.Sprintf("s%d", int(s))
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
