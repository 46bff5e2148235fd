package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// CustomDate holds a calendar day without a time of day.
type CustomDate struct {
	time.Time
}

func NewCustomDate(t time.Time) CustomDate {
	return CustomDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseCustomDate(s string) (CustomDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
	}
	return CustomDate{t}, nil
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseCustomDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format(DateLayout), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = NewCustomDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d *CustomDate) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("cannot parse date: %v", err)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
