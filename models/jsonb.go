package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue marshals a nested value into a JSONB column payload. The payload
// is handed to the driver as text so SQLite stores it as TEXT rather than
// BLOB; Postgres coerces it to jsonb either way.
func jsonbValue(v interface{}) (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// jsonbScan unmarshals a JSONB column payload into dst.
// SQLite hands the payload back as a string, Postgres as []byte.
func jsonbScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported column type %T for JSONB scan", value)
	}
}

// StringList is a JSONB-backed list of strings (gallery URLs, facilities, categories).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]string{})
	}
	return jsonbValue([]string(l))
}

func (l *StringList) Scan(value interface{}) error {
	return jsonbScan(l, value)
}
