package output

import (
	"context"
	"fmt"
	"io"

	"weeklog/pkg/parser"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "%s: %s\n", report.Metadata.Source, summaryLine(report))
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, task := range report.Tasks {
		f.formatTask(&task, w)
	}
	for _, event := range report.Events {
		f.formatEvent(&event, w)
	}

	if len(report.Tasks)+len(report.Events) > 0 {
		fmt.Fprintln(w, "---")
	}
	fmt.Fprintf(w, "Summary: %s\n", summaryLine(report))
	return nil
}

func (f *TextFormatter) formatTask(task *parser.Task, w io.Writer) {
	fmt.Fprintf(w, "%s %s  %s\n", checkbox(task.Done), task.Date.Format(parser.DayDateLayout), task.Msg)
	for _, st := range task.Subtasks {
		fmt.Fprintf(w, "      %s %s\n", checkbox(st.Done), st.Msg)
	}
	for _, note := range task.Notes {
		fmt.Fprintf(w, "        %s\n", note)
	}
}

func (f *TextFormatter) formatEvent(event *parser.Event, w io.Writer) {
	clock := "--:--"
	if event.Time != nil {
		clock = fmt.Sprintf("%02d:%02d", event.Time.Hour, event.Time.Minute)
	}
	fmt.Fprintf(w, "%s %s  %s\n", event.Date.Format(parser.DayDateLayout), clock, event.Msg)
	for _, note := range event.Notes {
		fmt.Fprintf(w, "        %s\n", note)
	}
}

func summaryLine(report *Report) string {
	if report.Kind == KindEvents {
		return fmt.Sprintf("%d event(s)", report.Summary.Events)
	}
	return fmt.Sprintf("%d task(s), %d done, %d open subtask(s)",
		report.Summary.Tasks, report.Summary.TasksDone, report.Summary.OpenSubtasks)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
