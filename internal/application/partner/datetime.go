package partner

import (
	"fmt"
	"time"
)

// DateTimeLayout is the wire format of response timestamps: local wall-clock
// time without a zone designator
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime is a timestamp rendered with DateTimeLayout
type DateTime time.Time

// NewDateTime wraps t
func NewDateTime(t time.Time) DateTime {
	return DateTime(t)
}

// Time returns the wrapped time
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// String formats the time in local time
func (d DateTime) String() string {
	return time.Time(d).Local().Format(DateTimeLayout)
}

// MarshalJSON implements json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	if time.Time(d).IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = DateTime{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid datetime %s", s)
	}
	t, err := time.ParseInLocation(DateTimeLayout, s[1:len(s)-1], time.Local)
	if err != nil {
		return fmt.Errorf("invalid datetime %s: %w", s, err)
	}
	*d = DateTime(t)
	return nil
}
