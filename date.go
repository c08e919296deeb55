package rendiconto

import (
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings, ISO-8601.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
//
// The zero value means "unknown": broker exports carry malformed or missing
// dates and the analysis must degrade instead of failing, so ordering and
// holding-period computations involving a zero Date yield "unknown" too.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseItalianDate parses a "dd/mm/yyyy" date as found in Italian broker
// exports. A malformed date returns the zero Date, never an error.
func ParseItalianDate(s string) Date {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(s))
	if err != nil {
		return Date{}
	}
	return NewDate(t.Date())
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601, or "-" for the unknown date.
func (d Date) String() string {
	if d.IsZero() {
		return "-"
	}
	return d.time().Format(DateFormat)
}

// IsZero returns true if the date is the zero (unknown) value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Time exposes the canonical time.Time of the day, for rendering.
func (d Date) Time() time.Time { return d.time() }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// DaysUntil returns the number of calendar days from d to x.
// It returns ok=false when either date is unknown.
func (d Date) DaysUntil(x Date) (days int, ok bool) {
	if d.IsZero() || x.IsZero() {
		return 0, false
	}
	return int(x.time().Sub(d.time()) / (24 * time.Hour)), true
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.time().Format(DateFormat) + `"`), nil
}
