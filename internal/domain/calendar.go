package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var dateParseRegex = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)

// Error returned when a date string is not a valid YYYY-MM-DD calendar date.
type ErrInvalidDate string

func (e ErrInvalidDate) Error() string {
	return fmt.Sprintf("invalid date string: %q", string(e))
}

// Date is a calendar day with no time of day and no zone.
// The zero value is not a valid date.
type Date struct {
	Y int
	M time.Month
	D int
}

func NewDate(y int, m time.Month, d int) Date {
	return DateOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Y: y, M: m, D: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	var d Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return Date{}, err
	}
	return d, nil
}

func (d Date) IsValid() bool {
	return d.M >= time.January && d.M <= time.December && d.D >= 1 && d.D <= DaysInMonth(d.Y, d.M)
}

func (d Date) IsZero() bool { return d == Date{} }

// midnight UTC has no DST transitions, so day differences are exact.
func (d Date) utc() time.Time {
	return time.Date(d.Y, d.M, d.D, 0, 0, 0, 0, time.UTC)
}

// In returns the start of the day in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Y, d.M, d.D, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// DaysSince returns the signed number of days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.utc().Sub(o.utc()) / (24 * time.Hour))
}

func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

func (d Date) After(o Date) bool {
	return d.Y > o.Y || (d.Y == o.Y && d.M > o.M) || (d.Y == o.Y && d.M == o.M && d.D > o.D)
}

func (d Date) Before(o Date) bool {
	return o.After(d)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Y, int(d.M), d.D)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	s := string(text)
	m := dateParseRegex.FindStringSubmatch(s)
	if m == nil {
		return ErrInvalidDate(s)
	}

	year, err := strconv.Atoi(m[1])
	if err != nil {
		return ErrInvalidDate(s)
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return ErrInvalidDate(s)
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return ErrInvalidDate(s)
	}

	parsed := Date{Y: year, M: time.Month(month), D: day}
	if !parsed.IsValid() {
		return ErrInvalidDate(s)
	}
	*d = parsed
	return nil
}

func IsLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func DaysInMonth(y int, m time.Month) int {
	switch m {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeap(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
