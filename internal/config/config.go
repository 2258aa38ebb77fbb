// Package config provides configuration types and defaults for opomo.
package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for opomo.
type Config struct {
	Timer       TimerConfig       `yaml:"timer" mapstructure:"timer"`
	UI          UIConfig          `yaml:"ui" mapstructure:"ui"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// TimerConfig holds the interval schedule: fixed work/break durations, the
// number of cycles, and whether a trailing break follows the final work phase.
type TimerConfig struct {
	Work   time.Duration `yaml:"work" mapstructure:"work"`
	Break  time.Duration `yaml:"break" mapstructure:"break"`
	Cycles int           `yaml:"cycles" mapstructure:"cycles"`
	Late   bool          `yaml:"late" mapstructure:"late"` // run a break after the last work phase
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"` // loop heartbeat; bounds input/expiry latency
	CueDelay     time.Duration `yaml:"cue_delay" mapstructure:"cue_delay"`         // hold before the phase-end cue
	BigDigits    bool          `yaml:"big_digits" mapstructure:"big_digits"`       // block-glyph countdown when the pane is tall enough
}

// PathsConfig holds file paths used outside the terminal display.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"` // debug log; keeps slog output off the TUI
}

// LogRotationConfig holds settings for debug log rotation
// (lumberjack-based).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with the classic pomodoro schedule.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Work:   25 * time.Minute,
			Break:  5 * time.Minute,
			Cycles: 4,
			Late:   false,
		},
		UI: UIConfig{
			PollInterval: 100 * time.Millisecond,
			CueDelay:     300 * time.Millisecond,
			BigDigits:    true,
		},
		Paths: PathsConfig{
			Log: ".opomo/opomo-debug.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate rejects configurations the timer core must never see. It runs
// before the controller is constructed; failures are fatal.
func (c *Config) Validate() error {
	if c.Timer.Work <= 0 {
		return fmt.Errorf("work duration must be positive, got %v", c.Timer.Work)
	}
	if c.Timer.Break <= 0 {
		return fmt.Errorf("break duration must be positive, got %v", c.Timer.Break)
	}
	if c.Timer.Cycles < 1 {
		return fmt.Errorf("cycles must be at least 1, got %d", c.Timer.Cycles)
	}
	if c.UI.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.UI.PollInterval)
	}
	if c.UI.CueDelay < 0 {
		return fmt.Errorf("cue delay must not be negative, got %v", c.UI.CueDelay)
	}
	return nil
}
