package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexspeak/wetsand/internal/hook"
)

func TestInspectCommand_ArmedBindingIsIdle(t *testing.T) {
	out, err := executeCommand(t, nil, "inspect")

	require.NoError(t, err)
	assert.Contains(t, out, "binding: idle\n")
	assert.Contains(t, out, "hook: "+hook.DefaultSource+"\n")
}

func TestInspectCommand_BindingMovesUnderCorrectPrefix(t *testing.T) {
	out, err := executeCommand(t, nil, "inspect", "194")

	require.NoError(t, err)
	assert.Contains(t, out, "binding: s4\n", "three correct digits should leave the fourth handler bound")
}

func TestInspectCommand_WrongDigitReportsIdle(t *testing.T) {
	out, err := executeCommand(t, nil, "inspect", "15")

	require.NoError(t, err)
	assert.Contains(t, out, "binding: idle\n", "a miss collapses back to the neutral binding")
}

func TestInspectCommand_RejectsNonDigits(t *testing.T) {
	_, err := executeCommand(t, nil, "inspect", "1a3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "digits 0-9")
}
