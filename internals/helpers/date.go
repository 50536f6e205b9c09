package helper

import (
	"bytes"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Date accepts "2006-01-02" or RFC3339 in request bodies and stores a calendar date.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if t, err := time.Parse(DateLayout, string(b)); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, string(b))
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", string(b))
	}
	y, m, dd := t.Date()
	d.Time = time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// DatatypesDate converts an optional request date for gorm date columns.
func DatatypesDate(d *Date) *datatypes.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	v := datatypes.Date(d.Time)
	return &v
}

// FormatDate renders an optional stored date, nil stays nil.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(DateLayout)
	return &s
}
