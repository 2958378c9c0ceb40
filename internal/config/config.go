// Package config loads analyzer settings from YAML and the environment and
// sets up logging.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"attribute-analyzer/internal/analyze"
	"attribute-analyzer/internal/match"
	"attribute-analyzer/internal/report"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "ATTRIBUTE_ANALYZER_CONFIG"
	EnvLogLevel = "ATTRIBUTE_ANALYZER_LOG_LEVEL"
	EnvLogFile  = "ATTRIBUTE_ANALYZER_LOG_FILE"
)

// DefaultThreshold is the similarity threshold used when none is configured.
const DefaultThreshold = 90

// Config holds all analyzer settings.
type Config struct {
	// Threshold is the inclusive minimum similarity, 0-100.
	Threshold float64 `yaml:"threshold"`
	// Scorer is "indel" or "sequence".
	Scorer string `yaml:"scorer"`
	// Workers is the number of matcher goroutines.
	Workers int          `yaml:"workers"`
	Input   InputConfig  `yaml:"input"`
	Report  ReportConfig `yaml:"report"`
	Log     LogConfig    `yaml:"log"`
}

// InputConfig selects the label column.
type InputConfig struct {
	Column string `yaml:"column,omitempty"`
	Sheet  string `yaml:"sheet,omitempty"`
	Header bool   `yaml:"header"`
}

func inputConfig(opts analyze.SourceOptions) InputConfig {
	return InputConfig{Column: opts.Column, Sheet: opts.Sheet, Header: opts.Header}
}

// SourceOptions converts the input settings for the loader.
func (c InputConfig) SourceOptions() analyze.SourceOptions {
	return analyze.SourceOptions{Column: c.Column, Sheet: c.Sheet, Header: c.Header}
}

// ReportConfig controls the review workbook.
type ReportConfig struct {
	Dir       string `yaml:"dir"`
	DiffBasis string `yaml:"diff_basis"`
	Enabled   bool   `yaml:"enabled"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives JSON logs in addition to stderr. Empty disables it.
	File string `yaml:"file,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Threshold: DefaultThreshold,
		Scorer:    match.ScorerIndel,
		Workers:   1,
		Input:     inputConfig(analyze.DefaultSourceOptions()),
		Report:    ReportConfig{Dir: ".", DiffBasis: string(report.DiffRaw), Enabled: true},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data over the defaults. Keys missing from data keep
// their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills blank string fields and canonicalizes names.
func applyDefaults(cfg *Config) {
	cfg.Scorer = strings.ToLower(strings.TrimSpace(cfg.Scorer))
	if cfg.Scorer == "" {
		cfg.Scorer = match.ScorerIndel
	}

	if cfg.Workers == 0 {
		cfg.Workers = 1
	}

	if cfg.Report.Dir == "" {
		cfg.Report.Dir = "."
	}

	cfg.Report.DiffBasis = strings.ToLower(strings.TrimSpace(cfg.Report.DiffBasis))
	if cfg.Report.DiffBasis == "" {
		cfg.Report.DiffBasis = string(report.DiffRaw)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// ApplyEnv overrides logging settings from the environment.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
}

// Validate checks every setting and reports the first invalid one.
func (c *Config) Validate() error {
	if err := match.ValidateThreshold(c.Threshold); err != nil {
		return err
	}

	if _, err := match.ScorerByName(c.Scorer); err != nil {
		return fmt.Errorf("scorer: %w", err)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers: must be at least 1, got %d", c.Workers)
	}

	if _, err := report.ParseDiffBasis(c.Report.DiffBasis); err != nil {
		return fmt.Errorf("report.diff_basis: %w", err)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ParseLogLevel maps debug, info, warn (or warning) and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
