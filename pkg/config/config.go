package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"weeklog/pkg/parser"
)

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	switch cfg.LineEnding {
	case LineEndingAuto, LineEndingLF, LineEndingCRLF:
	default:
		return fmt.Errorf("line_ending: invalid value %q (must be auto, lf, or crlf)", cfg.LineEnding)
	}

	if cfg.BirthdayFile == "" {
		return fmt.Errorf("birthday_file: path must not be empty")
	}

	if p := cfg.Generate.CallProbability; p < 0 || p > 1 {
		return fmt.Errorf("generate.call_probability: %v out of range [0, 1]", p)
	}

	return nil
}

// ResolveLineEnding maps the configured convention to a parser line ending,
// detecting it from the text when set to "auto".
func (c *Config) ResolveLineEnding(text string) parser.LineEnding {
	switch c.LineEnding {
	case LineEndingLF:
		return parser.LineEndingLF
	case LineEndingCRLF:
		return parser.LineEndingCRLF
	default:
		return parser.DetectLineEnding(text)
	}
}
