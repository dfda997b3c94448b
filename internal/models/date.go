package models

import (
	"fmt"
	"strings"
	"time"
)

// JSONDate accepts both RFC3339 timestamps and bare "YYYY-MM-DD" dates,
// which is how the web client sends birthdates.
type JSONDate time.Time

func (d *JSONDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = JSONDate(t)
			return nil
		}
	}

	return fmt.Errorf("invalid date %q", s)
}

func (d JSONDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.RFC3339) + `"`), nil
}

func (d JSONDate) Time() time.Time {
	return time.Time(d)
}
