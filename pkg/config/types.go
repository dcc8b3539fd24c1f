// Package config provides configuration loading and validation for weeklog.
package config

// Line-ending configuration values.
const (
	LineEndingAuto = "auto"
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LineEnding selects the log file's line-ending convention:
	// "auto", "lf", or "crlf".
	LineEnding string `yaml:"line_ending"`

	// BirthdayFile is the path to the companion roster file.
	BirthdayFile string `yaml:"birthday_file"`

	// Generate configures template generation.
	Generate GenerateConfig `yaml:"generate"`
}

// GenerateConfig configures template generation defaults.
type GenerateConfig struct {
	// IncludeBirthdays seeds congratulation tasks from the roster.
	IncludeBirthdays bool `yaml:"include_birthdays"`

	// SuggestCalls seeds occasional call-someone tasks.
	SuggestCalls bool `yaml:"suggest_calls"`

	// CallProbability is the per-day chance of a call suggestion,
	// within [0, 1].
	CallProbability float64 `yaml:"call_probability"`
}
