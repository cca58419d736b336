package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay_ReadsDigitsUntilQuit(t *testing.T) {
	stdin := strings.NewReader("1\n5\nq\n")

	out, err := executeCommand(t, stdin, "play", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out, "quiet play with no win gives no feedback at all")
}

func TestPlay_PromptAndBadInput(t *testing.T) {
	stdin := strings.NewReader("x\n\n1\nquit\n")

	out, err := executeCommand(t, stdin, "play")
	require.NoError(t, err)
	assert.Contains(t, out, "one per line")
	assert.Contains(t, out, `not a digit: "x"`)
}

func TestPlay_EOFEndsCleanly(t *testing.T) {
	stdin := strings.NewReader("1\n9\n")

	_, err := executeCommand(t, stdin, "play", "--quiet")
	assert.NoError(t, err, "EOF on stdin is a normal exit")
}

func TestPlay_ProfileSuppliesJournal(t *testing.T) {
	dir := t.TempDir()
	journalPath := filepath.Join(dir, "presses.db")
	profilePath := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profilePath,
		[]byte("journal: "+journalPath+"\nquiet: true\n"), 0o644))

	stdin := strings.NewReader("1\nq\n")
	_, err := executeCommand(t, stdin, "play", "--config", profilePath)
	require.NoError(t, err)

	_, err = os.Stat(journalPath)
	assert.NoError(t, err, "profile journal path should have been used")
}

func TestPlay_BadProfilePath(t *testing.T) {
	_, err := executeCommand(t, strings.NewReader(""), "play", "--config", "/does/not/exist.yaml")
	assert.Error(t, err)
}
