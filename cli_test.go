package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/cohortline/stats"
)

const attainmentJSON = `{
  "name": "Bachelor's Degree Attainment",
  "source": "NCES",
  "data": [{"year": 1995, "value": 24.98}, {"year": 2010, "value": 33.1}]
}`

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attainment.json"), []byte(attainmentJSON), 0o644))
	return dir
}

func TestRunTable(t *testing.T) {
	a := testApp(stats.NewDirSource(writeDataDir(t)))

	var buf bytes.Buffer
	err := runTable(context.Background(), a, "cohorts=1980,1970&stats=attainment", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "1970")
	assert.Contains(t, out, "Generation X")
	assert.Contains(t, out, "24.98")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "http://example.org/timeline/?cohorts=1970,1980&stats=attainment")
}

func TestRunTable_NoData(t *testing.T) {
	a := testApp(stats.NewDirSource(t.TempDir()))

	var buf bytes.Buffer
	err := runTable(context.Background(), a, "cohorts=1970", &buf)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "No data available")
}

func TestRunSVG(t *testing.T) {
	a := testApp(fakeSource{})

	var buf bytes.Buffer
	require.NoError(t, runSVG(a, "cohorts=1985", "", "", &buf))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), ">1985<")

	out := filepath.Join(t.TempDir(), "timeline.svg")
	require.NoError(t, runSVG(testApp(fakeSource{}), "cohorts=1970,1990", "", out, &buf))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), ">1990<")

	err = runSVG(testApp(fakeSource{}), "", filepath.Join(t.TempDir(), "missing.yaml"), "", &buf)
	assert.ErrorContains(t, err, "error reading svg style")
}

func TestRootCmd_Table(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := writeDataDir(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"table", "--config", t.TempDir(), "--data-dir", dir,
		"--share-url", "https://example.org/t/", "cohorts=1970&stats=attainment"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "24.98")
	assert.Contains(t, buf.String(), "https://example.org/t/?cohorts=1970&stats=attainment")
}

func TestRootCmd_Version(t *testing.T) {
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Version: dev\n", buf.String())
}

func TestSourceFor(t *testing.T) {
	s := testApp(fakeSource{}).settings

	s.DataDir = t.TempDir()
	src, err := sourceFor(s)
	require.NoError(t, err)
	assert.IsType(t, &stats.DirSource{}, src)

	s.DataDir = ""
	s.DataURL = "http://localhost:1313"
	s.DataTimeout = time.Second
	src, err = sourceFor(s)
	require.NoError(t, err)
	assert.IsType(t, &stats.HTTPSource{}, src)

	s.DataURL = ""
	_, err = sourceFor(s)
	assert.Error(t, err)
}

func TestRootCmd_SVGUsesConfiguredStyle(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	style := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(style, []byte("title: Family cohorts\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cohortline.yaml"),
		[]byte("data:\n  dir: "+dir+"\nsvg:\n  style: "+style+"\n"), 0o644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"svg", "--config", dir, "cohorts=1970"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Family cohorts")
}
