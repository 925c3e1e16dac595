package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONColumn serializes a free-form map for a jsonb column. A nil map
// becomes a NULL column rather than the string "null".
func toJSONColumn(data map[string]any) datatypes.JSON {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	return datatypes.JSON(raw)
}

// fromJSONColumn deserializes a jsonb column into a map. Malformed or NULL
// JSON yields a nil map; callers treat that the same as "no data".
func fromJSONColumn(data datatypes.JSON) map[string]any {
	if len(data) == 0 {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}

	return out
}
