package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := SetupLogging(path, "debug")
	require.NoError(t, err)
	assert.True(t, IsDebugMode())

	Infof("hello %s", "cohort")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello cohort")
}

func TestSetupLogging_Disabled(t *testing.T) {
	cleanup, err := SetupLogging("", "info")
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, IsDebugMode())
	Warnf("dropped")
}
