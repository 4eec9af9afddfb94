package customer

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
)

// DateLayout is the calendar date format accepted by the by-date statement query.
const DateLayout = "2006-01-02"

// Balance folds a statement into its net value, starting at 0: credits add, debits subtract.
// It does not reorder or modify entries.
func Balance(entries []Entry) float64 {
	var balance float64
	for _, e := range entries {
		if e.Type == Credit {
			balance += e.Amount
		} else {
			balance -= e.Amount
		}
	}
	return balance
}

// ParseDate parses a YYYY-MM-DD calendar date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", domain.ErrValidation)
	}
	return d, nil
}

// FilterByDate returns the entries created on the calendar day of date, evaluated in loc.
// Time of day is ignored. Original order is kept; no match yields an empty, non-nil slice.
func FilterByDate(entries []Entry, date time.Time, loc *time.Location) []Entry {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := date.In(loc).Date()
	out := make([]Entry, 0)
	for _, e := range entries {
		ey, em, ed := e.CreatedAt.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
