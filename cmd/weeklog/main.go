// Weeklog - Personal Weekly Log Tool
//
// Weeklog keeps a personal log as plain, hand-editable text and recovers
// structured task and event records from it. It can also generate blank
// week templates, optionally seeded with birthday reminders.
package main

import (
	"os"

	"weeklog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
