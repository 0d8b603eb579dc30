// Package levels loads block layouts for Arkanoid.
// This package does not depend on the game package; the game turns a
// validated Tile grid into block entities.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels/formats"
)

var (
	// ErrUnknownTile is returned when a level contains an unrecognized token.
	ErrUnknownTile = errors.New("levels: unknown tile token")

	// ErrBadDimensions is returned when declared width/height disagree with the grid.
	ErrBadDimensions = errors.New("levels: dimensions do not match tiles")

	// ErrNoLevels is returned when a source yields no level files.
	ErrNoLevels = errors.New("levels: no level files found")
)

// Tile is one cell of a level grid.
type Tile int

const (
	TileBlank Tile = iota
	TileOrange
	TileLightBlue
	TileGreen
	TileRed
	TileBlue
	TilePink
	TileSilver
	TileGold
)

var tileTokens = map[string]Tile{
	"blank":     TileBlank,
	"orange":    TileOrange,
	"lightblue": TileLightBlue,
	"green":     TileGreen,
	"red":       TileRed,
	"blue":      TileBlue,
	"pink":      TilePink,
	"silver":    TileSilver,
	"gold":      TileGold,
}

// ParseTile converts a level token to a Tile.
func ParseTile(token string) (Tile, error) {
	t, ok := tileTokens[token]
	if !ok {
		return TileBlank, fmt.Errorf("%w: %q", ErrUnknownTile, token)
	}
	return t, nil
}

// String returns the level token for the tile.
func (t Tile) String() string {
	for token, tile := range tileTokens {
		if tile == t {
			return token
		}
	}
	return "unknown"
}

// Level is a validated block layout.
type Level struct {
	ID       string // File name without extension
	Name     string
	Tiles    [][]Tile // Row 0 is the top row
	FilePath string
}

// Rows returns the number of tile rows.
func (l *Level) Rows() int {
	return len(l.Tiles)
}

// Cols returns the width of the widest row.
func (l *Level) Cols() int {
	cols := 0
	for _, row := range l.Tiles {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Count returns how many tiles satisfy keep.
func (l *Level) Count(keep func(Tile) bool) int {
	n := 0
	for _, row := range l.Tiles {
		for _, t := range row {
			if keep(t) {
				n++
			}
		}
	}
	return n
}

// Breakable returns the number of blocks that count toward winning.
func (l *Level) Breakable() int {
	return l.Count(func(t Tile) bool { return t != TileBlank && t != TileGold })
}

// FromRaw validates a parsed file and converts its tokens.
func FromRaw(id string, raw formats.Level) (Level, error) {
	if raw.Height != 0 && raw.Height != len(raw.Tiles) {
		return Level{}, fmt.Errorf("%w: height %d, %d rows", ErrBadDimensions, raw.Height, len(raw.Tiles))
	}

	lvl := Level{
		ID:    id,
		Name:  raw.Name,
		Tiles: make([][]Tile, len(raw.Tiles)),
	}
	if lvl.Name == "" {
		lvl.Name = id
	}

	for i, row := range raw.Tiles {
		if raw.Width != 0 && raw.Width != len(row) {
			return Level{}, fmt.Errorf("%w: width %d, row %d has %d tiles", ErrBadDimensions, raw.Width, i, len(row))
		}
		lvl.Tiles[i] = make([]Tile, len(row))
		for j, token := range row {
			t, err := ParseTile(token)
			if err != nil {
				return Level{}, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			lvl.Tiles[i][j] = t
		}
	}

	return lvl, nil
}
