package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}

func TestNewFileWritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.log")
	logger, err := NewFile("info", path)
	require.NoError(t, err)

	logger.Info("submission settled")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "submission settled")
}

func TestNewFileWithoutPathIsNop(t *testing.T) {
	logger, err := NewFile("debug", "")
	require.NoError(t, err)
	assert.NotPanics(t, func() { logger.Info("dropped") })
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "tiny", Truncate("tiny"))
	assert.Len(t, Truncate(strings.Repeat("a", 200)), 183)

	// every "é" after the leading byte starts at an odd offset, so byte 180 is mid-rune
	out := Truncate("a" + strings.Repeat("é", 100))
	assert.True(t, utf8.ValidString(out))
	assert.Len(t, out, 182)
	assert.True(t, strings.HasSuffix(out, "é..."))
}
