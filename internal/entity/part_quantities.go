package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PartQuantities maps a part code to an integer quantity. It is stored as
// serialized JSON text inside a single column, matching the layout of the
// existing jobs table. Values are integers, so the serialization can never
// contain NaN or infinities.
type PartQuantities map[string]int

// Value serializes the map for storage. A nil map is stored as "{}".
func (q PartQuantities) Value() (driver.Value, error) {
	if q == nil {
		q = PartQuantities{}
	}
	b, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the stored text. NULL scans to an empty map.
func (q *PartQuantities) Scan(value interface{}) error {
	if value == nil {
		*q = PartQuantities{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PartQuantities", value)
	}
	if len(data) == 0 {
		*q = PartQuantities{}
		return nil
	}
	return json.Unmarshal(data, q)
}
