package commands

import (
	"github.com/spf13/cobra"

	"weeklog/pkg/output"
)

// NewTasksCommand creates the tasks command.
func NewTasksCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "tasks <logfile>",
		Short: "Extract tasks from a weeklog file",
		Long: `Extract every TODO and DONE item from a weeklog file, in the order
they appear in the text.

A task is done only when the item itself is marked DONE and every one of
its subtasks is done as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], output.KindTasks, opts)
		},
	}

	addExtractFlags(cmd, opts)
	return cmd
}
