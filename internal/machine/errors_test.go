package machine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &Failure{Code: CodeWrongDigit, State: StateS3, Input: 5}
	assert.Equal(t, "WRONG_DIGIT at s3 (input=5)", f.Error())

	wrapped := &Failure{Code: CodeDecodeFault, State: StateS2, Input: 9, Err: errors.New("boom")}
	assert.Equal(t, "DECODE_FAULT at s2 (input=9): boom", wrapped.Error())
}

func TestCodeOf_WrappedError(t *testing.T) {
	f := &Failure{Code: CodeGateBlocked, State: StateS5, Input: 4}
	err := fmt.Errorf("press handling: %w", f)

	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, CodeGateBlocked, code)
	assert.True(t, IsGateBlocked(err))
}

func TestCodeOf_UnrelatedError(t *testing.T) {
	_, ok := CodeOf(errors.New("not a failure"))
	assert.False(t, ok)
	assert.False(t, IsGateBlocked(errors.New("nope")))
	assert.False(t, IsTamperFailure(nil))
}

func TestIsTamperFailure_BothCodes(t *testing.T) {
	assert.True(t, IsTamperFailure(&Failure{Code: CodePauseDetected}))
	assert.True(t, IsTamperFailure(&Failure{Code: CodeTamperDetected}))
	assert.False(t, IsTamperFailure(&Failure{Code: CodeWrongDigit}))
}

func TestDigitState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "s1", StateS1.String())
	assert.Equal(t, "s7", StateS7.String())
	assert.Equal(t, "state(42)", DigitState(42).String())
}
