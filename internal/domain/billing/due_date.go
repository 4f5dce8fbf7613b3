package billing

import (
	"fmt"
	"strings"
	"time"
)

// Due-date policy names accepted by PolicyFromName.
const (
	PolicyEndOfFirstMonth = "end_of_first_month"
	PolicyNetDays         = "net_days"
)

// DueDatePolicy computes the due date of a new invoice billed for cycle c.
// A due date entered by the user always wins over the policy.
type DueDatePolicy interface {
	DueDate(c Cycle, today time.Time) time.Time
}

// EndOfFirstMonth makes the invoice due on the last day of the cycle's first
// month: 30 April or 31 October.
type EndOfFirstMonth struct{}

func (EndOfFirstMonth) DueDate(c Cycle, _ time.Time) time.Time {
	s := c.Start()
	return time.Date(s.Year(), s.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// NetDays makes the invoice due Days after it is raised.
type NetDays struct {
	Days int
}

func (p NetDays) DueDate(_ Cycle, today time.Time) time.Time {
	return dateOnly(today).AddDate(0, 0, p.Days)
}

// PolicyFromName maps a configured policy name to a policy. Empty means
// end_of_first_month.
func PolicyFromName(name string, days int) (DueDatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyEndOfFirstMonth:
		return EndOfFirstMonth{}, nil
	case PolicyNetDays:
		if days < 0 {
			return nil, fmt.Errorf("billing: net_days needs a non-negative day count, got %d", days)
		}
		return NetDays{Days: days}, nil
	default:
		return nil, fmt.Errorf("billing: unknown due date policy %q", name)
	}
}

// Period is the billing period of an invoice and the due date derived for it.
type Period struct {
	Label   string
	DueDate time.Time
	Cycle   Cycle
	Known   bool // Label matched a standard cycle label
}

// Derive resolves a billing period label. An empty label selects the cycle
// containing today. An unrecognised label is kept as typed and its due date
// comes from the cycle containing today.
func Derive(label string, today time.Time, policy DueDatePolicy) Period {
	if policy == nil {
		policy = EndOfFirstMonth{}
	}
	label = strings.TrimSpace(label)

	if label == "" {
		c := CycleFor(today)
		return Period{Label: c.Label(), DueDate: policy.DueDate(c, today), Cycle: c, Known: true}
	}
	if c, ok := ParseCycleLabel(label); ok {
		return Period{Label: c.Label(), DueDate: policy.DueDate(c, today), Cycle: c, Known: true}
	}
	c := CycleFor(today)
	return Period{Label: label, DueDate: policy.DueDate(c, today), Cycle: c}
}
