package civil

import (
	"errors"
	"strings"
	"time"
)

var ErrBadDate = errors.New("date must be formatted as YYYY-MM-DD")

// Date is a calendar day without a time component, serialized as YYYY-MM-DD.
// The embedded time.Time is always midnight UTC.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	return DateOf(time.Now().UTC())
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)

	if err != nil {
		return Date{}, ErrBadDate
	}

	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Before/After/Equal are inherited from time.Time.

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseDate(s)

	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
