package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/cohortline/markers"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "", s.LogFile)
	assert.Equal(t, "http://localhost:1313", s.DataURL)
	assert.Equal(t, 10*time.Second, s.DataTimeout)
	assert.Equal(t, markers.DefaultBounds(), s.Bounds)
	assert.Equal(t, 25, s.AgeOffset)
	assert.Equal(t, 3, s.Tolerance)
	assert.Equal(t, []string{"literacy", "attainment"}, s.DefaultStats)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
data:
  dir: ./public/data
  timeout: 3s
timeline:
  minYear: 1940
stats:
  defaults: [graduation]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cohortline.yaml"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "./public/data", s.DataDir)
	assert.Equal(t, 3*time.Second, s.DataTimeout)
	assert.Equal(t, markers.Bounds{Min: 1940, Max: 2020}, s.Bounds)
	assert.Equal(t, []string{"graduation"}, s.DefaultStats)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("COHORTLINE_DATA_URL", "https://stats.example.org")
	t.Setenv("COHORTLINE_COHORT_TOLERANCE", "5")

	require.NoError(t, Load(t.TempDir()))
	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, "https://stats.example.org", s.DataURL)
	assert.Equal(t, 5, s.Tolerance)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cohortline.yaml"), []byte("logLevel: [debug"), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestCurrent_RejectsBadBounds(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(t.TempDir()))

	viper.Set("timeline.minYear", 2020)
	_, err := Current()
	assert.ErrorContains(t, err, "must be below")

	viper.Set("timeline.minYear", 1950)
	viper.Set("cohort.tolerance", 0)
	_, err = Current()
	assert.ErrorContains(t, err, "tolerance")
}

func TestSettings_Resolver(t *testing.T) {
	offsets := map[string]int{"proficiency": 14}

	r := Settings{AgeOffset: 25, Tolerance: 3}.Resolver(offsets)
	assert.Equal(t, 14, r.OffsetFor("proficiency"))
	assert.Equal(t, 25, r.OffsetFor("literacy"))

	r = Settings{AgeOffset: 30, Tolerance: 2}.Resolver(offsets)
	assert.Equal(t, 30, r.OffsetFor("proficiency"))
	assert.Equal(t, 2, r.Tolerance)
}
