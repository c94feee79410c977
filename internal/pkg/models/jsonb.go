package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is free-form json carried by a verification request; it maps to
// a nullable jsonb column.
type Metadata map[string]interface{}

// Value implements driver.Valuer; a nil map becomes SQL NULL
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, m)
	case string:
		return json.Unmarshal([]byte(data), m)
	default:
		return fmt.Errorf("unsupported metadata column type %T", src)
	}
}
