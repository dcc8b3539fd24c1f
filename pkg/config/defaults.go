package config

import "os"

// Default values for configuration.
const (
	DefaultLineEnding      = LineEndingAuto
	DefaultBirthdayFile    = "birthdays.yml"
	DefaultCallProbability = 0.1
)

// Environment variable names.
const (
	EnvBirthdayFile = "WEEKLOG_BIRTHDAY_FILE"
	EnvLineEnding   = "WEEKLOG_LINE_ENDING"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LineEnding:   DefaultLineEnding,
		BirthdayFile: DefaultBirthdayFile,
		Generate: GenerateConfig{
			CallProbability: DefaultCallProbability,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if file := os.Getenv(EnvBirthdayFile); file != "" {
		c.BirthdayFile = file
	}
	if le := os.Getenv(EnvLineEnding); le != "" {
		c.LineEnding = le
	}
}
