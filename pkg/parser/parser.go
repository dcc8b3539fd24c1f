package parser

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// Parser extracts tasks and events from weeklog text. A Parser is configured
// once for a line-ending convention; all marker search strings are derived
// from it at construction. Parsers are stateless across calls and safe for
// concurrent use on independent inputs.
type Parser struct {
	lineEnd string

	// unitEnds are the four candidate terminators of a unit's extent.
	// The nearest occurrence wins.
	unitEnds [4]string

	todoTag  string
	doneTag  string
	eventTag string
	dayTag   string

	log *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives non-fatal parse warnings.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Parser for the given line-ending convention.
func New(le LineEnding, opts ...Option) *Parser {
	lineEnd := string(le)
	p := &Parser{
		lineEnd:  lineEnd,
		todoTag:  lineEnd + MarkerItem + MarkerTodo,
		doneTag:  lineEnd + MarkerItem + MarkerDone,
		eventTag: lineEnd + MarkerItem + MarkerEvent,
		dayTag:   lineEnd + MarkerDay,
		log:      zap.NewNop(),
	}
	p.unitEnds = [4]string{
		lineEnd + MarkerItem, // next top-level list item
		lineEnd + lineEnd,    // empty line
		p.dayTag,             // next day heading
		lineEnd + MarkerWeek, // next week heading
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseEvents extracts every event in the text, in text-scan order.
// The text is not modified; calling ParseEvents twice on the same text
// yields identical output.
func (p *Parser) ParseEvents(text string) ([]Event, error) {
	var events []Event

	for _, off := range markerOffsets(text, p.eventTag) {
		lineStart := off + len(p.lineEnd)
		line, err := p.lineAt(text, lineStart)
		if err != nil {
			return nil, err
		}

		date, err := p.resolveDate(text, lineStart)
		if err != nil {
			return nil, err
		}

		msg, tod, err := p.parseEventLine(line, lineStart)
		if err != nil {
			return nil, err
		}

		notes, err := p.eventNotes(text, lineStart)
		if err != nil {
			return nil, err
		}

		events = append(events, Event{
			Msg:   msg,
			Notes: notes,
			Date:  date,
			Time:  tod,
		})
	}

	return events, nil
}

// ParseTasks extracts every task in the text, in text-scan order. TODO and
// DONE occurrences are gathered in a single combined pass; the marker only
// determines the task's preliminary completion state.
func (p *Parser) ParseTasks(text string) ([]Task, error) {
	type taskStart struct {
		offset int
		done   bool
	}

	var starts []taskStart
	for _, off := range markerOffsets(text, p.todoTag) {
		starts = append(starts, taskStart{offset: off, done: false})
	}
	for _, off := range markerOffsets(text, p.doneTag) {
		starts = append(starts, taskStart{offset: off, done: true})
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].offset < starts[j].offset })

	var tasks []Task
	for _, start := range starts {
		lineStart := start.offset + len(p.lineEnd)
		line, err := p.lineAt(text, lineStart)
		if err != nil {
			return nil, err
		}

		date, err := p.resolveDate(text, lineStart)
		if err != nil {
			return nil, err
		}

		msg, err := messageAfterColon(line, lineStart)
		if err != nil {
			return nil, err
		}

		end, err := p.endOfUnit(text, lineStart)
		if err != nil {
			return nil, err
		}

		bodyStart := lineStart + len(line)
		subtasks, notes, err := p.classifyChildren(text[bodyStart:end], bodyStart)
		if err != nil {
			return nil, err
		}

		// A task with any unfinished subtask is not done, regardless of
		// its own marker.
		done := start.done
		for _, st := range subtasks {
			if !st.Done {
				done = false
				break
			}
		}

		tasks = append(tasks, Task{
			Msg:      msg,
			Subtasks: subtasks,
			Notes:    notes,
			Date:     date,
			Done:     done,
		})
	}

	return tasks, nil
}

// parseEventLine splits an event line into message and optional clock time.
func (p *Parser) parseEventLine(line string, offset int) (string, *TimeOfDay, error) {
	// The plain form carries no time: "- EVT: <message>".
	if strings.Contains(line, MarkerEvent+":") {
		msg := strings.TrimLeftFunc(line[len(MarkerItem+MarkerEvent+":"):], unicode.IsSpace)
		return msg, nil, nil
	}

	// Timed form: "- EVT HH:MM: <message>".
	rest := line[len(MarkerItem+MarkerEvent):]
	if !strings.HasPrefix(rest, " ") {
		return "", nil, &StructuralError{Offset: offset, Reason: "event marker not followed by ': ' or a clock value"}
	}
	rest = rest[1:]

	c1 := strings.IndexByte(rest, ':')
	if c1 < 0 {
		return "", nil, &StructuralError{Offset: offset, Reason: "event clock value is missing the hour:minute separator"}
	}
	c2 := strings.IndexByte(rest[c1+1:], ':')
	if c2 < 0 {
		return "", nil, &StructuralError{Offset: offset, Reason: "event clock value is not followed by ':'"}
	}
	c2 += c1 + 1

	hour, err := strconv.Atoi(rest[:c1])
	if err != nil {
		return "", nil, &StructuralError{Offset: offset, Reason: "event hour is not numeric: " + rest[:c1]}
	}
	minute, err := strconv.Atoi(rest[c1+1 : c2])
	if err != nil {
		return "", nil, &StructuralError{Offset: offset, Reason: "event minute is not numeric: " + rest[c1+1:c2]}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", nil, &StructuralError{Offset: offset, Reason: "event clock value out of range: " + rest[:c2]}
	}

	msg := strings.TrimLeftFunc(rest[c2+1:], unicode.IsSpace)
	return msg, &TimeOfDay{Hour: hour, Minute: minute}, nil
}

// eventNotes collects the child lines beneath an event line. Every non-empty
// child line becomes one note; events have no subtasks.
func (p *Parser) eventNotes(text string, lineStart int) ([]string, error) {
	end, err := p.endOfUnit(text, lineStart)
	if err != nil {
		return nil, err
	}

	notes := []string{}
	children := strings.Split(text[lineStart:end], p.lineEnd)
	for _, child := range children[1:] { // children[0] is the event line itself
		if child == "" {
			continue
		}
		stripped := strings.TrimLeftFunc(child, unicode.IsSpace)
		if len(stripped) < len(MarkerItem) {
			continue
		}
		notes = append(notes, stripped[len(MarkerItem):])
	}
	return notes, nil
}

// classifyChildren folds a task's child lines into subtasks and notes.
// A line carrying both TODO and DONE is ambiguous: it is reported as a
// warning and dropped from the record. bodyStart is the absolute offset of
// body within the input, so errors point at the offending child line.
func (p *Parser) classifyChildren(body string, bodyStart int) ([]Subtask, []string, error) {
	subtasks := []Subtask{}
	notes := []string{}

	offset := bodyStart
	for _, child := range strings.Split(body, p.lineEnd) {
		childStart := offset
		offset += len(child) + len(p.lineEnd)

		line := child
		if i := strings.Index(line, MarkerItem); i >= 0 {
			line = line[i+len(MarkerItem):]
		}
		if line == "" {
			continue
		}

		hasTodo := strings.Contains(line, MarkerTodo)
		hasDone := strings.Contains(line, MarkerDone)
		switch {
		case hasTodo && hasDone:
			p.log.Warn("task child line carries both TODO and DONE; a task can either be done or todo",
				zap.String("line", line))
		case hasTodo, hasDone:
			msg, err := messageAfterColon(line, childStart)
			if err != nil {
				return nil, nil, err
			}
			subtasks = append(subtasks, Subtask{Msg: msg, Done: hasDone})
		default:
			notes = append(notes, line)
		}
	}

	return subtasks, notes, nil
}

// resolveDate resolves the owning date of the marker at the given offset by
// searching backward for the nearest preceding day heading. The heading's
// date is recovered by stripping every non-digit character and parsing the
// remaining run as DDMMYYYY; time.Parse rejects day-of-month overflow.
func (p *Parser) resolveDate(text string, offset int) (time.Time, error) {
	day := strings.LastIndex(text[:offset], p.dayTag)
	if day < 0 {
		return time.Time{}, &DateResolutionError{
			Offset: offset,
			Err:    errors.New("no preceding day heading"),
		}
	}

	lineStart := day + len(p.lineEnd)
	line := text[lineStart:]
	if eol := strings.Index(line, p.lineEnd); eol >= 0 {
		line = line[:eol]
	}

	var digits strings.Builder
	for _, r := range line {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	date, err := time.Parse(dayDigitsLayout, digits.String())
	if err != nil {
		return time.Time{}, &DateResolutionError{Offset: offset, Line: line, Err: err}
	}
	return date, nil
}

// endOfUnit returns the absolute offset where the unit anchored at from ends:
// the nearest following occurrence among the four candidate terminators.
// Reaching the end of text first means the input is truncated or malformed.
func (p *Parser) endOfUnit(text string, from int) (int, error) {
	end := -1
	for _, term := range p.unitEnds {
		if i := strings.Index(text[from:], term); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	if end < 0 {
		return 0, &StructuralError{
			Offset: from,
			Reason: "no unit terminator (next top-level item, empty line, day heading, or week heading) before end of text",
		}
	}
	return from + end, nil
}

// lineAt isolates the line beginning at start.
func (p *Parser) lineAt(text string, start int) (string, error) {
	eol := strings.Index(text[start:], p.lineEnd)
	if eol < 0 {
		return "", &StructuralError{Offset: start, Reason: "marker line has no terminating line ending"}
	}
	return text[start : start+eol], nil
}

// messageAfterColon returns the trimmed text after the first colon-space,
// which skips the marker and any tag between marker and colon.
func messageAfterColon(line string, offset int) (string, error) {
	i := strings.Index(line, ": ")
	if i < 0 {
		return "", &StructuralError{Offset: offset, Reason: "marker line has no ': ' separator: " + line}
	}
	return strings.TrimSpace(line[i+len(": "):]), nil
}

// markerOffsets returns the offset of every non-overlapping occurrence of
// marker in text, in scan order.
func markerOffsets(text, marker string) []int {
	var offsets []int
	for from := 0; ; {
		i := strings.Index(text[from:], marker)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, from+i)
		from += i + len(marker)
	}
}
