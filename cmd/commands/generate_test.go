package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_GeneratesDefaultChart(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Equal(t, "Chart saved as images/sample-report-chart.png\n", out)

	info, err := os.Stat(filepath.Join(dir, "images", "sample-report-chart.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerate_Subcommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := runCLI(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, "Chart saved as images/sample-report-chart.png\n", out)

	// second run replaces the file
	_, err = runCLI(t, "generate")
	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(dir, "images"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerate_LogFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := runCLI(t, "--log.file", "logs/app.log")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Report chart generated")
}

func TestGenerate_FailureIsReturned(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images"), []byte("blocker"), 0644))

	out, err := runCLI(t)
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRoot_RejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCLI(t, "extra")
	assert.Error(t, err)
}
