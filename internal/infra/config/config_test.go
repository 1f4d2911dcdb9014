package config

import (
	"os"
	"path/filepath"
	"testing"

	"sample-report/internal/series"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "images/sample-report-chart.png", cfg.Chart.OutputPath)
	assert.Equal(t, "Sample Trading Performance", cfg.Chart.Title)
	assert.Equal(t, 150.0, cfg.Chart.DPI)
	assert.Equal(t, 8.0, cfg.Chart.WidthIn)
	assert.Equal(t, 4.5, cfg.Chart.HeightIn)
	assert.Equal(t, series.DefaultParams(), cfg.Series)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SAMPLE_REPORT_SERIES_SEED", "7")
	t.Setenv("SAMPLE_REPORT_CHART_OUTPUT_PATH", "out/chart.png")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.EqualValues(t, 7, cfg.Series.Seed)
	assert.Equal(t, "out/chart.png", cfg.Chart.OutputPath)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SAMPLE_REPORT_SERIES_SAMPLES=250\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SAMPLE_REPORT_SERIES_SAMPLES") })

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Series.Samples)
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "chart:\n  dpi: 300\nseries:\n  baseline: 1000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 300.0, cfg.Chart.DPI)
	assert.Equal(t, 1000.0, cfg.Series.Baseline)
	assert.Equal(t, series.DefaultSamples, cfg.Series.Samples)
}

func TestLoadConfig_Flags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("series:\n  mean: 1.5\n"), 0644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", custom, "--log.level", "debug"}))

	cfg, err := LoadConfig(fs)
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Series.Mean)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingConfigFlagFile(t *testing.T) {
	chdir(t, t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", "nope.yaml"}))

	_, err := LoadConfig(fs)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SAMPLE_REPORT_SERIES_SAMPLES", "0")

	_, err := LoadConfig(nil)
	assert.ErrorIs(t, err, series.ErrInvalidParams)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Chart:  ChartConfig{OutputPath: "x.png", DPI: 150, WidthIn: 8, HeightIn: 4.5},
		Series: series.DefaultParams(),
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty path", func(c *Config) { c.Chart.OutputPath = " " }},
		{"zero dpi", func(c *Config) { c.Chart.DPI = 0 }},
		{"zero width", func(c *Config) { c.Chart.WidthIn = 0 }},
		{"negative height", func(c *Config) { c.Chart.HeightIn = -1 }},
	}

	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
