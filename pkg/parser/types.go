// Package parser recovers structured task and event records from a weeklog
// file: free-form week/day/item text using a small, fixed marker vocabulary.
package parser

import (
	"fmt"
	"time"
)

// Marker vocabulary. Every marker is searched for preceded by the configured
// line ending, so marker text inside a running line does not match.
const (
	// MarkerItem prefixes a top-level list item.
	MarkerItem = "- "

	// MarkerIndent is one unit of nested item indentation.
	MarkerIndent = "  "

	// MarkerDay prefixes a day heading ("## Mon, 14.10.2019").
	MarkerDay = "## "

	// MarkerWeek prefixes a week heading ("# Week 42, ...").
	MarkerWeek = "# Week "

	// MarkerTodo marks a not-done task or subtask.
	MarkerTodo = "TODO"

	// MarkerDone marks a done task or subtask.
	MarkerDone = "DONE"

	// MarkerEvent marks an event, with or without an embedded time.
	MarkerEvent = "EVT"

	// MarkerEventPlain is the literal form of an event without a time.
	MarkerEventPlain = "EVT: "
)

// DayDateLayout is the date format embedded in day headings.
const DayDateLayout = "02.01.2006"

// dayDigitsLayout parses the digit run left after stripping a day heading.
const dayDigitsLayout = "02012006"

// LineEnding is the line-ending convention of a weeklog file.
type LineEnding string

const (
	// LineEndingLF is the single line-feed convention.
	LineEndingLF LineEnding = "\n"

	// LineEndingCRLF is the carriage-return + line-feed convention.
	LineEndingCRLF LineEnding = "\r\n"
)

// Task is a scheduled item recovered from the log.
type Task struct {
	// Msg is the task text after the marker line's first colon-space.
	Msg string `json:"msg"`

	// Subtasks are the task's child items carrying TODO/DONE markers,
	// in source order.
	Subtasks []Subtask `json:"subtasks"`

	// Notes are the task's unmarked child lines, in source order.
	Notes []string `json:"notes"`

	// Date is the day the task belongs to (midnight UTC).
	Date time.Time `json:"date"`

	// Done is true only if the task itself was marked DONE and every
	// subtask is done as well.
	Done bool `json:"done"`
}

// Subtask is a child item of exactly one Task.
type Subtask struct {
	Msg  string `json:"msg"`
	Done bool   `json:"done"`
}

// Event is a timestamped entry recovered from the log.
type Event struct {
	// Msg is the event text.
	Msg string `json:"msg"`

	// Notes are the event's child lines, in source order.
	Notes []string `json:"notes"`

	// Date is the day the event belongs to (midnight UTC).
	Date time.Time `json:"date"`

	// Time is the clock time, or nil when the event carries none.
	Time *TimeOfDay `json:"time,omitempty"`
}

// TimeOfDay is a wall-clock time within a day. Second is always zero for
// parsed events; event lines carry only hours and minutes.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
