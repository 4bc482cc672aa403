// Package types implements the calendar types used for expenses and budgets.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidMonth = errors.New("could not parse the month, did you use YYYY-MM format?")

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Name returns the month in long form, e.g. "March 2024".
func (m Month) Name() string {
	return time.Time(m).Format("January 2006")
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the month as YYYY-MM string.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Accepts YYYY-MM, YYYY-MM-DD and RFC3339. Everything except year and month
// is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := parseMonthLenient(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler so that Month can be used
// as a map key in JSON documents.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(data []byte) error {
	parsed, err := ParseMonth(string(data))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for URI and query binding.
func (m *Month) UnmarshalParam(param string) error {
	parsed, err := ParseMonth(param)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

func parseMonthLenient(value string) (Month, error) {
	if fullDate.MatchString(value) {
		return ParseDateToMonth(value)
	}

	if len(value) == len("2006-01") {
		return ParseMonth(value)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseDateToMonth parses a string in RFC3339 full-date format and returns the Month value it represents.
func ParseDateToMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}

	return MonthOf(t), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.Month().Equal(m)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Time(m).AddDate(0, 1, -1).Day()
}

// Day returns the date of the given day in the month.
func (m Month) Day(day int) Date {
	t := time.Time(m)
	return NewDate(t.Year(), t.Month(), day)
}
