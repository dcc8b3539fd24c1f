// Package roster loads the companion birthday file: a YAML dict of people and
// their birthdays, optionally followed by a "# Presents" section of present
// suggestions per person. The heading line starts with '#', so both halves of
// the file remain valid YAML on their own.
package roster

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"weeklog/pkg/parser"
)

// presentsHeading separates birthday entries from present suggestions.
const presentsHeading = "# Presents"

// Person is one roster entry.
type Person struct {
	Name     string
	Birthday Birthday

	// Presents holds present suggestions, nil when the file has none for
	// this person.
	Presents []string
}

// Birthday is a calendar birthday whose year may be unknown.
type Birthday struct {
	Day   int
	Month int

	// Year is 0 when the birth year is unknown ("20.12.?").
	Year int
}

// HasYear reports whether the birth year is known.
func (b Birthday) HasYear() bool {
	return b.Year != 0
}

// Date returns the full birth date. Only meaningful when HasYear is true.
func (b Birthday) Date() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the birthday the way the file spells it.
func (b Birthday) String() string {
	if b.HasYear() {
		return fmt.Sprintf("%02d.%02d.%04d", b.Day, b.Month, b.Year)
	}
	return fmt.Sprintf("%02d.%02d.?", b.Day, b.Month)
}

// FormatError reports an undecodable roster file or an unparseable entry.
type FormatError struct {
	// Entry is the person whose entry failed, when known.
	Entry string

	Err error
}

func (e *FormatError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("roster format error: %v", e.Err)
	}
	return fmt.Sprintf("roster format error in entry %q: %v", e.Entry, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Load reads and parses a roster file.
func Load(path string) ([]Person, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided roster path is expected
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses roster text. People are returned sorted by name; the YAML
// mapping carries no order of its own and downstream template generation
// must be deterministic.
func Parse(data string) ([]Person, error) {
	birthdaySection := data
	presentsSection := ""
	if i := strings.Index(data, presentsHeading); i >= 0 {
		birthdaySection, presentsSection = data[:i], data[i:]
	}

	var entries map[string]string
	if err := yaml.Unmarshal([]byte(birthdaySection), &entries); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("decoding birthday entries: %w", err)}
	}

	people := make([]Person, 0, len(entries))
	for name, value := range entries {
		birthday, err := parseBirthday(value)
		if err != nil {
			return nil, &FormatError{Entry: name, Err: err}
		}
		people = append(people, Person{Name: name, Birthday: birthday})
	}
	sort.Slice(people, func(i, j int) bool { return people[i].Name < people[j].Name })

	if presentsSection != "" {
		var presents map[string][]string
		if err := yaml.Unmarshal([]byte(presentsSection), &presents); err != nil {
			return nil, &FormatError{Err: fmt.Errorf("decoding present suggestions: %w", err)}
		}
		for i := range people {
			people[i].Presents = presents[people[i].Name]
		}
	}

	return people, nil
}

// parseBirthday parses "DD.MM.YYYY", or "DD.MM.?" when the year is unknown.
func parseBirthday(value string) (Birthday, error) {
	if !strings.Contains(value, "?") {
		date, err := time.Parse(parser.DayDateLayout, value)
		if err != nil {
			return Birthday{}, fmt.Errorf("invalid birthday %q: %w", value, err)
		}
		return Birthday{Day: date.Day(), Month: int(date.Month()), Year: date.Year()}, nil
	}

	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return Birthday{}, fmt.Errorf("invalid birthday %q: want DD.MM.YYYY or DD.MM.?", value)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Birthday{}, fmt.Errorf("invalid day in birthday %q: %w", value, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Birthday{}, fmt.Errorf("invalid month in birthday %q: %w", value, err)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return Birthday{}, fmt.Errorf("birthday %q out of range", value)
	}
	return Birthday{Day: day, Month: month}, nil
}
