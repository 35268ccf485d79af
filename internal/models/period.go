package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid report period")

// Period identifies a calendar month
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewPeriod validates a year/month pair
func NewPeriod(year, month int) (Period, error) {
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf decomposes a timestamp into its calendar month. Ledger dates are
// midnight UTC, so the decomposition is done in UTC whatever location the
// driver handed back.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

// Key is the zero-padded "YYYY-MM" bucket key; keys sort chronologically
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label is the short month name shown on chart axes
func (p Period) Label() string {
	return p.Month.String()[:3]
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// Contains reports whether t falls inside the period
func (p Period) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}

// Start is midnight UTC on the first day of the period
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}
