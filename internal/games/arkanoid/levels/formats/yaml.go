package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML level file. The layout matches the JSON format.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return l, nil
}
