// Package types implements special types for the Homeledger backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Period is the recurring cadence over which a budget's allocations reset.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Valid reports whether the period is one of the known cadences.
func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

func (p Period) String() string {
	return string(p)
}

// Value implements the driver.Valuer interface.
func (p Period) Value() (driver.Value, error) {
	return string(p), nil
}

// Scan implements the sql.Scanner interface.
func (p *Period) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = Period(v)
	case []byte:
		*p = Period(v)
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}

	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Periods are matched case-insensitively.
func (p *Period) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed := Period(strings.ToLower(value))
	if !parsed.Valid() {
		return fmt.Errorf("%q is not a valid period", value)
	}

	*p = parsed
	return nil
}
