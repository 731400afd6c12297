package types

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"time"
)

// Date is a calendar day without a time of day. It is stored as midnight UTC.
type Date time.Time

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

func parseDateOrTimestamp(value string) (time.Time, error) {
	if fullDate.MatchString(value) {
		return time.Parse("2006-01-02", value)
	}

	return time.Parse(time.RFC3339, value)
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// Format formats the date with a time layout.
func (d Date) Format(layout string) string {
	return time.Time(d).Format(layout)
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and RFC3339 timestamps. For timestamps,
// the calendar day in the timestamp's own offset is used.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	t, err := parseDateOrTimestamp(value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	*d = DateOf(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether the day d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysUntil returns the number of whole calendar days from d to e. It is
// negative when e is before d.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}
