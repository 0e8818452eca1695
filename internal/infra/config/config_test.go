package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "active users", cfg.Summary.Metric)
	require.Equal(t, 4, cfg.Summary.MinWeekDays)
	require.Equal(t, "date", cfg.Input.TimeColumn)
	require.Equal(t, "table", cfg.Output.Format)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
summary:
  metric: sessions
  metricUnit: sessions
  precision: 1
input:
  path: data/sessions.csv
output:
  format: json
  top: 3
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SUMMARY_PRECISION", "0")
	t.Setenv("OUTPUT_COLOR", "false")
	t.Setenv("INPUT_FORMAT", "CSV")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sessions", cfg.Summary.Metric)
	require.Equal(t, 0, cfg.Summary.Precision)
	require.Equal(t, 0.01, cfg.Summary.NoiseThreshold)
	require.Equal(t, "data/sessions.csv", cfg.Input.Path)
	require.Equal(t, "csv", cfg.Input.Format)
	require.Equal(t, "json", cfg.Output.Format)
	require.Equal(t, 3, cfg.Output.Top)
	require.False(t, cfg.Output.Color)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "blank metric", mutate: func(c *Config) { c.Summary.Metric = "  " }, errMsg: "summary.metric cannot be empty"},
		{name: "week days", mutate: func(c *Config) { c.Summary.MinWeekDays = 8 }, errMsg: "summary.minWeekDays must be within [1,7]"},
		{name: "input format", mutate: func(c *Config) { c.Input.Format = "xml" }, errMsg: `input.format "xml" is not supported`},
		{name: "output format", mutate: func(c *Config) { c.Output.Format = "html" }, errMsg: `output.format "html" is not supported`},
		{name: "min validity", mutate: func(c *Config) { c.Output.MinValidity = 2 }, errMsg: "output.minValidity must be within [0,1]"},
		{name: "negative top", mutate: func(c *Config) { c.Output.Top = -1 }, errMsg: "output.top cannot be negative"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input.Timezone = "Mars/Olympus"
	require.ErrorContains(t, cfg.Validate(), "input.timezone")
}
