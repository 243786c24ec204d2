package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap stores a free-form JSON object in a TEXT column. It implements
// driver.Valuer and sql.Scanner so repositories can bind and scan it like
// any other column value.
type JSONMap map[string]any

// Value serializes the map for storage. A nil map is stored as an empty
// object so reads never see NULL.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores the map from its stored TEXT representation.
func (m *JSONMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = JSONMap{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return fmt.Errorf("unsupported type %T for JSONMap", src)
}
