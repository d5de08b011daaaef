package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ErrorResponse is the standard error payload returned by controllers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Pagination describes the paging metadata of a list response.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse wraps list data with pagination metadata.
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// DateTime is a time.Time that marshals as "2006-01-02 15:04:05" and accepts
// both date-only and datetime inputs.
type DateTime time.Time

const dateTimeFormat = "2006-01-02 15:04:05"

func (dt DateTime) IsZero() bool {
	return time.Time(dt).IsZero()
}

func (dt DateTime) Time() time.Time {
	return time.Time(dt)
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(dt)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(dateTimeFormat) + `"`), nil
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*dt = DateTime(time.Time{})
		return nil
	}
	for _, layout := range []string{dateTimeFormat, "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*dt = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("invalid datetime: %s", s)
}

func (dt DateTime) Value() (driver.Value, error) {
	t := time.Time(dt)
	if t.IsZero() {
		return nil, nil
	}
	return t, nil
}

func (dt *DateTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*dt = DateTime(time.Time{})
	case time.Time:
		*dt = DateTime(v)
	case []byte:
		return dt.UnmarshalJSON(v)
	case string:
		return dt.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into DateTime", value)
	}
	return nil
}
