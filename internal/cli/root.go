// Package cli provides the command-line interface for weeklog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weeklog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weeklog",
		Short: "Extract tasks and events from a plain-text week log",
		Long: `Weeklog keeps a personal log as loosely structured, hand-editable text:
week headings, day headings, and list items for tasks and events.

It recovers structured records from that text:
  - Tasks (TODO/DONE items with subtasks and notes)
  - Events (EVT items with an optional clock time and notes)

and generates blank week templates to fill in by hand.

Exit codes:
  0 - Success
  1 - Log structure problems found (check)
  2 - Configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a weeklog configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(commands.NewTasksCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
