// Package generate emits blank weeklog templates: week and day headings for a
// range of ISO weeks, optionally seeded with birthday and call-someone tasks
// from the roster. The output uses the parser's marker vocabulary, so
// generated templates parse cleanly.
package generate

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"weeklog/pkg/parser"
	"weeklog/pkg/roster"
)

// Options control template generation.
type Options struct {
	// Year is the ISO year of the first generated week.
	Year int

	// Week is the first ISO week number, within [1, 52].
	Week int

	// Weeks is the number of consecutive weeks to generate, at least 1.
	Weeks int

	// LineEnding is the convention to emit. Defaults to LF.
	LineEnding parser.LineEnding

	// People is the roster consulted for birthdays and call suggestions.
	People []roster.Person

	// IncludeBirthdays seeds congratulation tasks on matching days.
	IncludeBirthdays bool

	// SuggestCalls seeds an occasional call-someone task.
	SuggestCalls bool

	// CallProbability is the per-day chance of a call suggestion, within
	// [0, 1]. Zero never suggests a call.
	CallProbability float64

	// Rand is the randomness source for call suggestions. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// Today anchors age calculation for birthday tasks. Defaults to the
	// current date.
	Today time.Time
}

// Write generates the template into w.
func Write(w io.Writer, opts Options) error {
	if opts.Week < 1 || opts.Week > 52 {
		return fmt.Errorf("week %d out of range [1, 52]", opts.Week)
	}
	if opts.Weeks < 1 {
		return fmt.Errorf("number of weeks must be at least 1, got %d", opts.Weeks)
	}

	le := string(opts.LineEnding)
	if le == "" {
		le = string(parser.LineEndingLF)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- call suggestions need no crypto randomness
	}
	today := opts.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	byDay := birthdaysByDay(opts.People)

	var b strings.Builder
	day := WeekStart(opts.Year, opts.Week)
	last := day.AddDate(0, 0, 7*opts.Weeks-1)
	for !day.After(last) {
		if day.Weekday() == time.Monday {
			_, week := day.ISOWeek()
			endOfWeek := day.AddDate(0, 0, 6)
			fmt.Fprintf(&b, "%s%d, %s - %s%s%s",
				parser.MarkerWeek, week,
				day.Format(parser.DayDateLayout), endOfWeek.Format(parser.DayDateLayout),
				le, le)
		}

		fmt.Fprintf(&b, "%s%s, %s%s",
			parser.MarkerDay, day.Weekday().String()[:3], day.Format(parser.DayDateLayout), le)

		if opts.IncludeBirthdays {
			key := monthDay{month: int(day.Month()), day: day.Day()}
			for _, person := range byDay[key] {
				if person.Birthday.HasYear() {
					fmt.Fprintf(&b, "%s%s: Congratulate %s (Age %d)%s",
						parser.MarkerItem, parser.MarkerTodo,
						person.Name, age(person.Birthday.Date(), today), le)
				} else {
					fmt.Fprintf(&b, "%s%s: Congratulate %s%s",
						parser.MarkerItem, parser.MarkerTodo, person.Name, le)
				}
			}
		}

		if opts.SuggestCalls && len(opts.People) > 0 && rng.Float64() < opts.CallProbability {
			person := opts.People[rng.Intn(len(opts.People))]
			fmt.Fprintf(&b, "%s%s: Call %s%s", parser.MarkerItem, parser.MarkerTodo, person.Name, le)
		}

		b.WriteString(le)
		day = day.AddDate(0, 0, 1)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WeekStart returns the Monday of the given ISO week.
func WeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := anchor.AddDate(0, 0, -((int(anchor.Weekday()) + 6) % 7))
	return monday.AddDate(0, 0, (week-1)*7)
}

type monthDay struct {
	month int
	day   int
}

// birthdaysByDay indexes the roster by calendar day. People sharing a day
// keep their roster (name-sorted) order.
func birthdaysByDay(people []roster.Person) map[monthDay][]roster.Person {
	byDay := make(map[monthDay][]roster.Person, len(people))
	for _, person := range people {
		key := monthDay{month: person.Birthday.Month, day: person.Birthday.Day}
		byDay[key] = append(byDay[key], person)
	}
	return byDay
}

// age is the number of full 52-week years between birth and today.
func age(birth, today time.Time) int {
	weeks := int(today.Sub(birth).Hours() / (24 * 7))
	return weeks / 52
}
