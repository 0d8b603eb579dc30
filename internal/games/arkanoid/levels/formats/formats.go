// Package formats provides pluggable level file format parsers.
// Every parser produces the same raw Level: a token grid plus metadata.
// Tokens are not interpreted here.
package formats

import (
	"fmt"
	"strings"
)

// Level is a parsed level file before token validation.
type Level struct {
	Name   string     `json:"name" yaml:"name"`
	Width  int        `json:"width" yaml:"width"`
	Height int        `json:"height" yaml:"height"`
	Tiles  [][]string `json:"tiles" yaml:"tiles"`
}

// Parse routes data to the parser registered for ext (including the dot).
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".lvl", ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".lvl", ".json", ".yaml", ".yml"}
}

// Supported reports whether ext has a parser.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range FormatExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}
