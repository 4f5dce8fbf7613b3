package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Half names one of the two six-month billing cycles of a year.
type Half int

const (
	AprilSeptember Half = iota
	OctoberMarch
)

func (h Half) String() string {
	if h == OctoberMarch {
		return "October-March"
	}
	return "April-September"
}

// Cycle is a six-month billing period. An OctoberMarch cycle runs into
// StartYear+1.
type Cycle struct {
	Half      Half
	StartYear int
}

const labelDate = "02 January 2006"

// Start is the first day of the cycle.
func (c Cycle) Start() time.Time {
	if c.Half == OctoberMarch {
		return time.Date(c.StartYear, time.October, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(c.StartYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the cycle.
func (c Cycle) End() time.Time {
	return c.Start().AddDate(0, 6, -1)
}

// Label renders "01 October 2026 to 31 March 2027".
func (c Cycle) Label() string {
	return c.Start().Format(labelDate) + " to " + c.End().Format(labelDate)
}

// Next returns the cycle that follows c.
func (c Cycle) Next() Cycle {
	if c.Half == OctoberMarch {
		return Cycle{Half: AprilSeptember, StartYear: c.StartYear + 1}
	}
	return Cycle{Half: OctoberMarch, StartYear: c.StartYear}
}

// Contains reports whether the calendar date of t falls inside c.
func (c Cycle) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(c.Start()) && !d.After(c.End())
}

// CycleFor returns the cycle containing today. January to March belong to
// the October cycle that started the previous year.
func CycleFor(today time.Time) Cycle {
	m := today.Month()
	switch {
	case m >= time.April && m <= time.September:
		return Cycle{Half: AprilSeptember, StartYear: today.Year()}
	case m >= time.October:
		return Cycle{Half: OctoberMarch, StartYear: today.Year()}
	default:
		return Cycle{Half: OctoberMarch, StartYear: today.Year() - 1}
	}
}

// CycleOptions returns the current and the next cycle.
func CycleOptions(today time.Time) []Cycle {
	c := CycleFor(today)
	return []Cycle{c, c.Next()}
}

var (
	aprilLabel   = regexp.MustCompile(`(?i)^01 april (\d{4}) to 30 september (\d{4})$`)
	octoberLabel = regexp.MustCompile(`(?i)^01 october (\d{4}) to 31 march (\d{4})$`)
)

// ParseCycleLabel recognises labels produced by Cycle.Label, ignoring case
// and surrounding or repeated spaces.
func ParseCycleLabel(label string) (Cycle, bool) {
	s := strings.Join(strings.Fields(label), " ")
	if m := aprilLabel.FindStringSubmatch(s); m != nil {
		y1, _ := strconv.Atoi(m[1])
		y2, _ := strconv.Atoi(m[2])
		if y1 == y2 {
			return Cycle{Half: AprilSeptember, StartYear: y1}, true
		}
		return Cycle{}, false
	}
	if m := octoberLabel.FindStringSubmatch(s); m != nil {
		y1, _ := strconv.Atoi(m[1])
		y2, _ := strconv.Atoi(m[2])
		if y2 == y1+1 {
			return Cycle{Half: OctoberMarch, StartYear: y1}, true
		}
	}
	return Cycle{}, false
}

func (c Cycle) String() string {
	return fmt.Sprintf("%s %d", c.Half, c.StartYear)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
