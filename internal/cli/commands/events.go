package commands

import (
	"github.com/spf13/cobra"

	"weeklog/pkg/output"
)

// NewEventsCommand creates the events command.
func NewEventsCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "events <logfile>",
		Short: "Extract events from a weeklog file",
		Long: `Extract every EVT item from a weeklog file, in the order they appear
in the text. Events carry an optional HH:MM clock time and any indented
child lines become notes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], output.KindEvents, opts)
		},
	}

	addExtractFlags(cmd, opts)
	return cmd
}
