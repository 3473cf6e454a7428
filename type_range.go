package shopbook

import (
	"fmt"
	"time"
)

// Clock supplies the current time. Mutators and report windows never call
// time.Now directly so tests can fix the clock.
type Clock func() time.Time

// Range represents an inclusive time window, from the first instant of a day
// to the last second of another.
type Range struct{ From, To time.Time }

// NewRange creates a new range. If 'from' is after 'to', they are swapped.
func NewRange(from, to time.Time) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if t is included in the range (boundaries included).
func (r Range) Contains(t time.Time) bool { return !t.Before(r.From) && !t.After(r.To) }

// DayRange returns the window covering the calendar day of 'on', from
// midnight to 23:59:59, in on's location.
func DayRange(on time.Time) Range {
	y, m, d := on.Date()
	loc := on.Location()
	return Range{
		From: time.Date(y, m, d, 0, 0, 0, 0, loc),
		To:   time.Date(y, m, d, 23, 59, 59, 0, loc),
	}
}

// MonthRange returns the window covering a whole calendar month, from the
// first instant of day 1 to 23:59:59 on the last day.
func MonthRange(year int, month time.Month, loc *time.Location) Range {
	return Range{
		From: time.Date(year, month, 1, 0, 0, 0, 0, loc),
		// day 0 of the next month is the last day of this one.
		To: time.Date(year, month+1, 0, 23, 59, 59, 0, loc),
	}
}

// ThisMonthRange returns the window covering the calendar month of 'on'.
func ThisMonthRange(on time.Time) Range {
	return MonthRange(on.Year(), on.Month(), on.Location())
}

// Identifier computes a short unique identifier for the Range: the date for a
// single-day window, "2006-January" for a month, from_to otherwise.
func (r Range) Identifier() string {
	const day = "2006-01-02"
	if sameDay(r.From, r.To) {
		return r.From.Format(day)
	}
	if r.From.Day() == 1 && sameDay(r.To, MonthRange(r.From.Year(), r.From.Month(), r.From.Location()).To) {
		return r.From.Format("2006-January")
	}
	return fmt.Sprintf("%s_%s", r.From.Format(day), r.To.Format(day))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
