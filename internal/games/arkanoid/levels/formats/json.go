package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses the JSON level format ({"width", "height", "tiles"}).
func ParseJSON(data []byte) (Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return l, nil
}
