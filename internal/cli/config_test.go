package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile_Full(t *testing.T) {
	path := writeProfile(t, "journal: /tmp/presses.db\nquiet: true\n")

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/presses.db", p.Journal)
	assert.True(t, p.Quiet)
}

func TestLoadProfile_Empty(t *testing.T) {
	path := writeProfile(t, "")

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Empty(t, p.Journal)
	assert.False(t, p.Quiet)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoadProfile_Malformed(t *testing.T) {
	path := writeProfile(t, "journal: [unclosed\n")

	_, err := LoadProfile(path)
	assert.Error(t, err)
}
