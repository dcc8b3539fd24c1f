package generate

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"weeklog/pkg/parser"
	"weeklog/pkg/roster"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		year int
		week int
		want time.Time
	}{
		{
			name: "mid-year week",
			year: 2019,
			week: 42,
			want: time.Date(2019, time.October, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week one starting on January 4th",
			year: 2021,
			week: 1,
			want: time.Date(2021, time.January, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week one starting in previous year",
			year: 2019,
			week: 1,
			want: time.Date(2018, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "late week",
			year: 2020,
			week: 52,
			want: time.Date(2020, time.December, 21, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.year, tt.week)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%d, %d) = %v, want %v", tt.year, tt.week, got, tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("WeekStart(%d, %d) falls on %v, want Monday", tt.year, tt.week, got.Weekday())
			}
		})
	}
}

func TestWrite_SingleWeek(t *testing.T) {
	var out strings.Builder
	err := Write(&out, Options{Year: 2019, Week: 42, Weeks: 1})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := `# Week 42, 14.10.2019 - 20.10.2019

## Mon, 14.10.2019

## Tue, 15.10.2019

## Wed, 16.10.2019

## Thu, 17.10.2019

## Fri, 18.10.2019

## Sat, 19.10.2019

## Sun, 20.10.2019

`
	if out.String() != want {
		t.Errorf("Write() = %q, want %q", out.String(), want)
	}
}

func TestWrite_SpansYearBoundary(t *testing.T) {
	var out strings.Builder
	err := Write(&out, Options{Year: 2020, Week: 52, Weeks: 2})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"# Week 52, 21.12.2020 - 27.12.2020",
		"# Week 53, 28.12.2020 - 03.01.2021",
		"## Sun, 03.01.2021",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Write() output missing %q:\n%s", want, got)
		}
	}
}

func TestWrite_Birthdays(t *testing.T) {
	people := []roster.Person{
		{Name: "Alex", Birthday: roster.Birthday{Day: 16, Month: 10, Year: 2001}},
		{Name: "Bob Smith", Birthday: roster.Birthday{Day: 18, Month: 10}},
	}

	var out strings.Builder
	err := Write(&out, Options{
		Year:             2019,
		Week:             42,
		Weeks:            1,
		People:           people,
		IncludeBirthdays: true,
		Today:            time.Date(2019, time.October, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "## Wed, 16.10.2019\n- TODO: Congratulate Alex (Age 18)\n") {
		t.Errorf("Write() output missing Alex's birthday task:\n%s", got)
	}
	// Unknown birth year: no age.
	if !strings.Contains(got, "## Fri, 18.10.2019\n- TODO: Congratulate Bob Smith\n") {
		t.Errorf("Write() output missing Bob Smith's birthday task:\n%s", got)
	}
}

func TestWrite_CallSuggestions(t *testing.T) {
	people := []roster.Person{
		{Name: "Alex", Birthday: roster.Birthday{Day: 19, Month: 1, Year: 2001}},
	}

	var out strings.Builder
	err := Write(&out, Options{
		Year:            2019,
		Week:            42,
		Weeks:           1,
		People:          people,
		SuggestCalls:    true,
		CallProbability: 1.0,
		Rand:            rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if got := strings.Count(out.String(), "- TODO: Call Alex\n"); got != 7 {
		t.Errorf("Write() suggested %d calls, want one per day (7):\n%s", got, out.String())
	}
}

func TestWrite_ZeroCallProbability(t *testing.T) {
	// An explicit zero probability means no calls, even with calls enabled.
	people := []roster.Person{
		{Name: "Alex", Birthday: roster.Birthday{Day: 19, Month: 1, Year: 2001}},
	}

	var out strings.Builder
	err := Write(&out, Options{
		Year:            2019,
		Week:            42,
		Weeks:           1,
		People:          people,
		SuggestCalls:    true,
		CallProbability: 0,
		Rand:            rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if strings.Contains(out.String(), "Call") {
		t.Errorf("Write() suggested a call at probability zero:\n%s", out.String())
	}
}

func TestWrite_RoundTripsThroughParser(t *testing.T) {
	people := []roster.Person{
		{Name: "Alex", Birthday: roster.Birthday{Day: 16, Month: 10, Year: 2001}},
	}

	var out strings.Builder
	err := Write(&out, Options{
		Year:             2019,
		Week:             42,
		Weeks:            1,
		People:           people,
		IncludeBirthdays: true,
		Today:            time.Date(2019, time.October, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	p := parser.New(parser.LineEndingLF)
	tasks, err := p.ParseTasks(out.String())
	if err != nil {
		t.Fatalf("ParseTasks() on generated template: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ParseTasks() returned %d tasks, want 1", len(tasks))
	}
	task := tasks[0]
	if task.Msg != "Congratulate Alex (Age 18)" {
		t.Errorf("Msg = %q, want %q", task.Msg, "Congratulate Alex (Age 18)")
	}
	if want := time.Date(2019, time.October, 16, 0, 0, 0, 0, time.UTC); !task.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", task.Date, want)
	}
	if task.Done {
		t.Error("Done = true, want false")
	}

	events, err := p.ParseEvents(out.String())
	if err != nil {
		t.Fatalf("ParseEvents() on generated template: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("ParseEvents() = %+v, want none in a blank template", events)
	}
}

func TestWrite_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "week zero",
			opts: Options{Year: 2019, Week: 0, Weeks: 1},
		},
		{
			name: "week beyond 52",
			opts: Options{Year: 2019, Week: 53, Weeks: 1},
		},
		{
			name: "zero weeks",
			opts: Options{Year: 2019, Week: 1, Weeks: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			if err := Write(&out, tt.opts); err == nil {
				t.Fatal("Write() error = nil, want validation error")
			}
		})
	}
}

func TestWrite_CRLF(t *testing.T) {
	var out strings.Builder
	err := Write(&out, Options{Year: 2019, Week: 42, Weeks: 1, LineEnding: parser.LineEndingCRLF})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "## Mon, 14.10.2019\r\n") {
		t.Errorf("Write() output missing CRLF day heading:\n%q", got)
	}
	if strings.Contains(strings.ReplaceAll(got, "\r\n", ""), "\n") {
		t.Errorf("Write() emitted bare LF in CRLF mode:\n%q", got)
	}
}
