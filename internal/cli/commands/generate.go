package commands

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weeklog/internal/logger"
	"weeklog/pkg/config"
	"weeklog/pkg/generate"
	"weeklog/pkg/parser"
	"weeklog/pkg/roster"
)

// GenerateOptions holds command-line options for the generate command.
type GenerateOptions struct {
	Year         int
	BirthdayFile string
	Birthdays    bool
	Calls        bool
	Seed         int64
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <week> [n-weeks]",
		Short: "Generate blank week templates",
		Long: `Generate blank weeklog templates for one or more ISO weeks.

The template is written to stdout so it can be appended to a log file;
diagnostics go to stderr. Weeks are numbered starting from 1, so any
value within [1,52] is accepted.

With --birthdays, days get a congratulation task for each person in the
birthday file whose birthday falls on them. With --calls, an occasional
call-someone task is suggested to make it easier to stay in touch.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "Year of the first week (default: current year)")
	cmd.Flags().StringVar(&opts.BirthdayFile, "birthday-file", "", "File to source birthdays from")
	cmd.Flags().BoolVarP(&opts.Birthdays, "birthdays", "b", false, "Include birthday tasks from the birthday file")
	cmd.Flags().BoolVarP(&opts.Calls, "calls", "c", false, "Randomly suggest calling someone from the birthday file")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed for call suggestions (0 = time-based)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *GenerateOptions) error {
	week, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid week number %q: %w", args[0], err)
	}
	weeks := 1
	if len(args) == 2 {
		weeks, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid week count %q: %w", args[1], err)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync(log)

	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
		log.Info("no year provided, defaulting to current year", zap.Int("year", year))
	}

	includeBirthdays := opts.Birthdays || cfg.Generate.IncludeBirthdays
	suggestCalls := opts.Calls || cfg.Generate.SuggestCalls

	var people []roster.Person
	if includeBirthdays || suggestCalls {
		birthdayFile := opts.BirthdayFile
		if birthdayFile == "" {
			birthdayFile = cfg.BirthdayFile
		}
		people, err = roster.Load(birthdayFile)
		if err != nil {
			return fmt.Errorf("loading birthday file: %w", err)
		}
		log.Debug("loaded birthday file", zap.String("file", birthdayFile), zap.Int("people", len(people)))
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed)) // #nosec G404 -- call suggestions need no crypto randomness
	}

	lineEnding := parser.LineEndingLF
	if cfg.LineEnding == config.LineEndingCRLF {
		lineEnding = parser.LineEndingCRLF
	}

	log.Info("generating templates",
		zap.Int("weeks", weeks),
		zap.Int("first_week", week),
		zap.Int("year", year))

	err = generate.Write(cmd.OutOrStdout(), generate.Options{
		Year:             year,
		Week:             week,
		Weeks:            weeks,
		LineEnding:       lineEnding,
		People:           people,
		IncludeBirthdays: includeBirthdays,
		SuggestCalls:     suggestCalls,
		CallProbability:  cfg.Generate.CallProbability,
		Rand:             rng,
	})
	if err != nil {
		return err
	}

	log.Info("done")
	return nil
}
