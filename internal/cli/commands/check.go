package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weeklog/internal/logger"
	"weeklog/pkg/output"
	"weeklog/pkg/parser"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <logfile>",
		Short: "Check a weeklog file for structural problems",
		Long: `Run both extraction passes over a weeklog file and report whether its
structure is intact.

Checks:
  - Every task and event unit has a terminating boundary
  - Every task and event has a preceding day heading with a valid date
  - Marker lines follow the vocabulary (": " separators, HH:MM clock values)

Exit codes:
  0 - Log structure valid
  1 - Structure or date problems found
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

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
	p := parser.New(le, parser.WithLogger(log))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking %s (%s line endings)...\n\n", path, output.LineEndingName(le))

	valid := true

	if tasks, err := p.ParseTasks(text); err != nil {
		valid = false
		fmt.Fprintf(out, "  tasks:  FAILED (%s): %v\n", classify(err), err)
	} else {
		fmt.Fprintf(out, "  tasks:  %d record(s)\n", len(tasks))
	}

	if events, err := p.ParseEvents(text); err != nil {
		valid = false
		fmt.Fprintf(out, "  events: FAILED (%s): %v\n", classify(err), err)
	} else {
		fmt.Fprintf(out, "  events: %d record(s)\n", len(events))
	}

	fmt.Fprintln(out)
	if !valid {
		fmt.Fprintln(out, "Log structure is broken; fix the lines above and re-run.")
		ExitCode = 1
		return nil
	}

	fmt.Fprintln(out, "Log structure valid!")
	return nil
}

// classify names the error category for the check report.
func classify(err error) string {
	var structErr *parser.StructuralError
	if errors.As(err, &structErr) {
		return "structural"
	}
	var dateErr *parser.DateResolutionError
	if errors.As(err, &dateErr) {
		return "date resolution"
	}
	return "unknown"
}
