package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weeklog/internal/logger"
	"weeklog/pkg/config"
	"weeklog/pkg/output"
	"weeklog/pkg/parser"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// ExtractOptions holds command-line options shared by the tasks and events
// commands.
type ExtractOptions struct {
	Output string
	Quiet  bool
}

func addExtractFlags(cmd *cobra.Command, opts *ExtractOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no records")
}

func runExtract(cmd *cobra.Command, path, kind string, opts *ExtractOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync(log)

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}
	text := string(data)

	le := cfg.ResolveLineEnding(text)
	log.Debug("resolved line ending", zap.String("line_ending", output.LineEndingName(le)))

	p := parser.New(le, parser.WithLogger(log))
	meta := output.Metadata{
		Source:     path,
		LineEnding: output.LineEndingName(le),
		ParsedAt:   time.Now().UTC(),
	}

	var report *output.Report
	switch kind {
	case output.KindTasks:
		tasks, err := p.ParseTasks(text)
		if err != nil {
			return fmt.Errorf("extracting tasks from %s: %w", path, err)
		}
		report = output.NewTaskReport(tasks, meta)
	case output.KindEvents:
		events, err := p.ParseEvents(text)
		if err != nil {
			return fmt.Errorf("extracting events from %s: %w", path, err)
		}
		report = output.NewEventReport(events, meta)
	default:
		return fmt.Errorf("unknown extraction kind %q", kind)
	}

	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return formatter.Format(ctx, report, cmd.OutOrStdout())
}

// loadConfig loads the file named by the persistent --config flag, or the
// defaults when the flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	return logger.New(debug)
}
