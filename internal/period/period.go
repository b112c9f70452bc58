// Package period normalizes dates to canonical bucket starts and walks
// between adjacent buckets for each questionnaire granularity.
package period

import (
	"fmt"
	"time"
)

type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
	Quarterly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// Parse maps a path segment to its granularity.
func Parse(s string) (Granularity, error) {
	switch s {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	default:
		return 0, fmt.Errorf("unknown granularity %q", s)
	}
}

// Anchor returns the canonical bucket start containing t: the date itself
// for Daily, the preceding Sunday for Weekly, the first of the month for
// Monthly, and the first month of the quarter for Quarterly. The result is
// always midnight UTC.
func Anchor(g Granularity, t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch g {
	case Daily:
		return day
	case Weekly:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		qm := time.Month(((int(m)-1)/3)*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Next returns the anchor of the bucket immediately after the one
// containing t.
func Next(g Granularity, t time.Time) time.Time {
	a := Anchor(g, t)
	switch g {
	case Daily:
		return a.AddDate(0, 0, 1)
	case Weekly:
		return a.AddDate(0, 0, 7)
	case Monthly:
		return a.AddDate(0, 1, 0)
	case Quarterly:
		return a.AddDate(0, 3, 0)
	default:
		return a
	}
}

// Previous returns the anchor of the bucket immediately before the one
// containing t.
func Previous(g Granularity, t time.Time) time.Time {
	a := Anchor(g, t)
	switch g {
	case Daily:
		return a.AddDate(0, 0, -1)
	case Weekly:
		return a.AddDate(0, 0, -7)
	case Monthly:
		return a.AddDate(0, -1, 0)
	case Quarterly:
		return a.AddDate(0, -3, 0)
	default:
		return a
	}
}
