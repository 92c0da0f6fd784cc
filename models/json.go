package models

import (
	"encoding/json"
	"fmt"
)

// scanJSON unmarshals a TEXT/BLOB column into dest, tolerating NULL.
func scanJSON(dest interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
