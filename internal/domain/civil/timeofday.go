package civil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrBadTimeOfDay = errors.New("duration must be formatted as HH:MM:SS")

// TimeOfDay is an elapsed time within a single day, serialized as HH:MM:SS.
// It maps to a SQL TIME column.
type TimeOfDay struct {
	time.Duration
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")

	if len(parts) != 3 {
		return TimeOfDay{}, ErrBadTimeOfDay
	}

	var h, m, sec int

	_, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)

	if err != nil {
		return TimeOfDay{}, ErrBadTimeOfDay
	}

	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return TimeOfDay{}, ErrBadTimeOfDay
	}

	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second

	return TimeOfDay{d}, nil
}

// FromMicroseconds builds a TimeOfDay from a microsecond count, the unit
// pgtype.Time uses.
func FromMicroseconds(us int64) TimeOfDay {
	return TimeOfDay{time.Duration(us) * time.Microsecond}
}

func (t TimeOfDay) String() string {
	total := int64(t.Duration / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)

	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseTimeOfDay(s)

	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
