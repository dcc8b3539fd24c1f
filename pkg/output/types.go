// Package output provides formatting and output generation for extracted
// weeklog records.
package output

import (
	"time"

	"weeklog/pkg/parser"
)

// Report kinds, one per extraction pass.
const (
	KindTasks  = "tasks"
	KindEvents = "events"
)

// Report is the complete extraction output for one log file.
type Report struct {
	// Kind names the extraction pass that produced the report.
	Kind string `json:"kind"`

	// Tasks holds extracted tasks, in text-scan order.
	Tasks []parser.Task `json:"tasks,omitempty"`

	// Events holds extracted events, in text-scan order.
	Events []parser.Event `json:"events,omitempty"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Metadata provides context about the extraction.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Tasks is the number of extracted tasks.
	Tasks int `json:"tasks"`

	// TasksDone is the number of tasks that are fully done.
	TasksDone int `json:"tasks_done"`

	// OpenSubtasks is the number of not-done subtasks across all tasks.
	OpenSubtasks int `json:"open_subtasks"`

	// Events is the number of extracted events.
	Events int `json:"events"`
}

// Metadata provides context about the extraction run.
type Metadata struct {
	// Source is the log file the records came from.
	Source string `json:"source"`

	// LineEnding is the convention the file uses ("lf" or "crlf").
	LineEnding string `json:"line_ending"`

	// ParsedAt is when the extraction was performed.
	ParsedAt time.Time `json:"parsed_at"`
}

// NewTaskReport builds a Report for a task extraction pass.
func NewTaskReport(tasks []parser.Task, meta Metadata) *Report {
	report := &Report{
		Kind:     KindTasks,
		Tasks:    tasks,
		Metadata: meta,
		Summary:  Summary{Tasks: len(tasks)},
	}
	for _, task := range tasks {
		if task.Done {
			report.Summary.TasksDone++
		}
		for _, st := range task.Subtasks {
			if !st.Done {
				report.Summary.OpenSubtasks++
			}
		}
	}
	return report
}

// NewEventReport builds a Report for an event extraction pass.
func NewEventReport(events []parser.Event, meta Metadata) *Report {
	return &Report{
		Kind:     KindEvents,
		Events:   events,
		Metadata: meta,
		Summary:  Summary{Events: len(events)},
	}
}

// LineEndingName returns the metadata name of a line-ending convention.
func LineEndingName(le parser.LineEnding) string {
	if le == parser.LineEndingCRLF {
		return "crlf"
	}
	return "lf"
}
