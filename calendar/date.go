/*
Package calendar provides day-level date arithmetic for lease pricing.

PURPOSE:
  Move-in proration depends on exact calendar facts: how many days a
  month has, and how many days remain chargeable from a given move-in
  date through month end. Both counts feed the pricing engine, so they
  live in one small, dependency-free package.

KEY CONCEPTS:
  - Date: a day-granularity point in time, UTC-normalized
  - DaysInMonth: real Gregorian month length (28-31)
  - ChargedDaysFrom: inclusive count from move-in through end of month

INCLUSIVITY INVARIANT:
  ChargedDaysFrom counts BOTH endpoints. Moving in on the last day of
  a month yields 1 charged day, never 0. The tenant occupies the unit
  on the move-in day itself.

SEE ALSO:
  - pricing/engine.go: consumes both counts
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a zero or unparseable date reaches a
// calculation that requires a real calendar day.
var ErrInvalidDate = errors.New("invalid date")

// =============================================================================
// DATE - Day-granularity point in time
// =============================================================================

// Date is a calendar day. The zero value is invalid; construct via
// NewDate, ParseDate, or Today.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Validate reports whether the date holds a real calendar day.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool  { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool  { return d.normalize().After(other.normalize()) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{Time: d.Time.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{Time: d.Time.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }
func (d Date) IsZero() bool      { return d.Time.IsZero() }

func (d Date) String() string { return d.normalize().Format("2006-01-02") }

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

// EndOfMonth returns the last calendar day of d's month.
func (d Date) EndOfMonth() Date {
	t := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return Date{Time: t}
}

// DaysInMonth returns the real Gregorian length of d's month (28-31).
func (d Date) DaysInMonth() int {
	return d.EndOfMonth().Day()
}

// DaysBetween returns whole days from `from` to `to` (exclusive of `to`).
func DaysBetween(from, to Date) int {
	return int(to.normalize().Sub(from.normalize()).Hours() / 24)
}

// ChargedDaysFrom counts the days billed when a tenant moves in on d:
// every day from d through the last day of d's month, both inclusive.
func ChargedDaysFrom(d Date) int {
	return DaysBetween(d, d.EndOfMonth()) + 1
}
