// Package config provides configuration loading and validation for pledgeviz.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("log format must be text or json")
	ErrInvalidDelimiter    = errors.New("csv delimiter must be a single character")
	ErrInvalidInterval     = errors.New("playback interval must be positive")
	ErrInvalidStep         = errors.New("playback step must be positive")
	ErrInvalidSpeed        = errors.New("playback speed must be positive")
	ErrInvalidPoints       = errors.New("chart points must be positive")
	ErrInvalidBucketSize   = errors.New("chart bucket size must be positive")
	ErrInvalidLadderBucket = errors.New("chart ladder bucket must be positive")
)

// Config holds all configuration for pledgeviz.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	CSV      CSVConfig      `mapstructure:"csv"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Chart    ChartConfig    `mapstructure:"chart"`
	Display  DisplayConfig  `mapstructure:"display"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CSVConfig describes the export file dialect.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

// PlaybackConfig holds the simulated clock settings.
type PlaybackConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	Step     time.Duration `mapstructure:"step"`
	Speed    float64       `mapstructure:"speed"`
	Loop     bool          `mapstructure:"loop"`
}

// ChartConfig holds chart sampling and output settings.
type ChartConfig struct {
	Points       int           `mapstructure:"points"`
	BucketSize   float64       `mapstructure:"bucket_size"`
	Proportional bool          `mapstructure:"proportional"`
	LadderBucket time.Duration `mapstructure:"ladder_bucket"`
	Output       string        `mapstructure:"output"`
	ColourMode   string        `mapstructure:"colour_mode"`
}

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
	NoColor  bool   `mapstructure:"no_color"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.CSV.Delimiter)
	}

	if c.Playback.Interval <= 0 {
		return ErrInvalidInterval
	}

	if c.Playback.Step <= 0 {
		return ErrInvalidStep
	}

	if c.Playback.Speed <= 0 {
		return ErrInvalidSpeed
	}

	if c.Chart.Points <= 0 {
		return ErrInvalidPoints
	}

	if c.Chart.BucketSize <= 0 {
		return ErrInvalidBucketSize
	}

	if c.Chart.LadderBucket <= 0 {
		return ErrInvalidLadderBucket
	}

	return nil
}

// SlogLevel parses Level as a log/slog level name such as "debug" or "warn".
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return level, nil
}

// JSON reports whether logs should be written as JSON.
func (l LoggingConfig) JSON() bool {
	return strings.EqualFold(l.Format, "json")
}

// Comma returns the delimiter as a rune, or ',' when unset.
func (c CSVConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}
