package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-analyzer/internal/analyze"
	"attribute-analyzer/internal/match"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 90, cfg.Threshold, 0)
	assert.Equal(t, match.ScorerIndel, cfg.Scorer)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Input.Header)
	assert.Equal(t, ".", cfg.Report.Dir)
	assert.Equal(t, "raw", cfg.Report.DiffBasis)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	yamlContent := `
threshold: 85.5
scorer: Sequence
workers: 4
input:
  column: Attribute Name
  sheet: Attributes
  header: false
report:
  dir: out
  diff_basis: NORMALIZED
  enabled: false
log:
  level: DEBUG
  file: analyzer.log
`

	cfg, err := Parse([]byte(yamlContent))
	require.NoError(t, err)

	assert.InDelta(t, 85.5, cfg.Threshold, 0)
	assert.Equal(t, "sequence", cfg.Scorer)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, InputConfig{Column: "Attribute Name", Sheet: "Attributes", Header: false}, cfg.Input)
	assert.Equal(t, ReportConfig{Dir: "out", DiffBasis: "normalized", Enabled: false}, cfg.Report)
	assert.Equal(t, LogConfig{Level: "debug", File: "analyzer.log"}, cfg.Log)
	require.NoError(t, cfg.Validate())
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("threshold: 0\n"))
	require.NoError(t, err)

	// An explicit zero threshold is kept.
	assert.Zero(t, cfg.Threshold)
	assert.True(t, cfg.Input.Header)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, "indel", cfg.Scorer)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("threshold: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 75\nworkers: 2\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 75, cfg.Threshold, 0)
	assert.Equal(t, 2, cfg.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"threshold too high", func(c *Config) { c.Threshold = 150 }, "invalid similarity threshold 150"},
		{"threshold negative", func(c *Config) { c.Threshold = -1 }, "invalid similarity threshold -1"},
		{"scorer", func(c *Config) { c.Scorer = "jaro" }, "scorer:"},
		{"workers", func(c *Config) { c.Workers = -2 }, "workers: must be at least 1"},
		{"diff basis", func(c *Config) { c.Report.DiffBasis = "words" }, "report.diff_basis:"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ThresholdErrorType(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 101

	var thrErr *match.InvalidThresholdError
	require.ErrorAs(t, cfg.Validate(), &thrErr)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvLogLevel: "WARN", EnvLogFile: "/tmp/a.log"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	ApplyEnv(&cfg, lookup)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/a.log", cfg.Log.File)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Input.Column = "#2"

	data, err := Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "diff_basis: raw")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, *back)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_LevelsAndFormats(t *testing.T) {
	var stderr bytes.Buffer

	path := filepath.Join(t.TempDir(), "analyzer.log")

	logger, cleanup, err := NewLogger(&stderr, path, slog.LevelInfo)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("analysis finished", "pairs", 3)
	require.NoError(t, cleanup())

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "msg=\"analysis finished\" pairs=3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "analysis finished", entry["msg"])
	assert.InDelta(t, 3, entry["pairs"], 0)
}

func TestInputConfig_SourceOptions(t *testing.T) {
	assert.Equal(t, analyze.DefaultSourceOptions(), Default().Input.SourceOptions())

	in := InputConfig{Column: "#2", Sheet: "Export", Header: false}
	assert.Equal(t, analyze.SourceOptions{Column: "#2", Sheet: "Export"}, in.SourceOptions())
}

func TestNewLogger_File(t *testing.T) {
	var stderr bytes.Buffer

	path := filepath.Join(t.TempDir(), "analyzer.log")

	logger, cleanup, err := NewLogger(&stderr, path, slog.LevelDebug)
	require.NoError(t, err)

	logger.Debug("loading labels", "path", "a.csv")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loading labels"`)
	assert.Contains(t, stderr.String(), "loading labels")

	_, _, err = NewLogger(&stderr, filepath.Join(t.TempDir(), "missing", "a.log"), slog.LevelInfo)
	assert.Error(t, err)
}

func TestNewLogger_StderrOnly(t *testing.T) {
	var stderr bytes.Buffer

	logger, cleanup, err := NewLogger(&stderr, "", slog.LevelInfo)
	require.NoError(t, err)
	require.NoError(t, cleanup())

	logger.Warn("large scan")
	assert.Contains(t, stderr.String(), "large scan")
}
