package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONTime wraps time.Time so we can control both
// JSON un/marshaling and SQL driver encoding.
type JSONTime time.Time

// UnmarshalJSON accepts RFC3339 ("2025-05-16T15:32:25Z", with or without
// fractional seconds) plus the timezone-less forms some clients send.
// Anything else is rejected outright: a submission deadline that cannot
// be parsed must fail the request, not be silently coerced.
func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			*jt = JSONTime(t)
			return nil
		}
	}
	return fmt.Errorf("JSONTime.UnmarshalJSON: cannot parse %q as timestamp", s)
}

// MarshalJSON always emits full RFC3339.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(jt).Format(time.RFC3339))
}

// Time returns the wrapped time.Time.
func (jt JSONTime) Time() time.Time {
	return time.Time(jt)
}

// Value implements driver.Valuer so GORM/pgx can
// turn JSONTime into a SQL TIMESTAMPTZ parameter.
func (jt JSONTime) Value() (driver.Value, error) {
	return time.Time(jt), nil
}

// Scan implements sql.Scanner so GORM can read
// TIMESTAMPTZ back into JSONTime when querying.
func (jt *JSONTime) Scan(src interface{}) error {
	if src == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*jt = JSONTime(v)
		return nil
	case []byte:
		// Postgres driver sometimes gives []byte
		t, err := time.Parse(time.RFC3339Nano, string(v))
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", string(v), err)
		}
		*jt = JSONTime(t)
		return nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", v, err)
		}
		*jt = JSONTime(t)
		return nil
	default:
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", src)
	}
}
