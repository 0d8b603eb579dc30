package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// BlockType is the colour class of a block, which decides durability and score.
type BlockType int

const (
	BlockOrange BlockType = iota
	BlockLightBlue
	BlockGreen
	BlockRed
	BlockBlue
	BlockPink
	BlockSilver
	BlockGold
)

// String returns the level token for the type.
func (t BlockType) String() string {
	switch t {
	case BlockOrange:
		return "orange"
	case BlockLightBlue:
		return "lightblue"
	case BlockGreen:
		return "green"
	case BlockRed:
		return "red"
	case BlockBlue:
		return "blue"
	case BlockPink:
		return "pink"
	case BlockSilver:
		return "silver"
	case BlockGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Score returns the points for breaking a block of this type.
// levelNumber is one-based. Gold never breaks and is worth nothing.
func (t BlockType) Score(levelNumber int) int {
	switch t {
	case BlockOrange:
		return 60
	case BlockLightBlue:
		return 70
	case BlockGreen:
		return 80
	case BlockRed:
		return 90
	case BlockBlue:
		return 100
	case BlockPink:
		return 110
	case BlockSilver:
		return 50 * levelNumber
	default:
		return 0
	}
}

// Counts reports whether the type has to be cleared to win.
func (t BlockType) Counts() bool {
	return t != BlockGold
}

// Color returns the display colour.
func (t BlockType) Color() core.Color {
	switch t {
	case BlockOrange:
		return core.ColorOrange
	case BlockLightBlue:
		return core.ColorLightBlue
	case BlockGreen:
		return core.ColorGreen
	case BlockRed:
		return core.ColorRed
	case BlockBlue:
		return core.ColorBlue
	case BlockPink:
		return core.ColorPink
	case BlockSilver:
		return core.ColorSilver
	case BlockGold:
		return core.ColorGold
	default:
		return core.ColorDefault
	}
}

// blockTypeForTile maps a level tile to a block type; blank tiles have none.
func blockTypeForTile(t levels.Tile) (BlockType, bool, error) {
	switch t {
	case levels.TileBlank:
		return 0, false, nil
	case levels.TileOrange:
		return BlockOrange, true, nil
	case levels.TileLightBlue:
		return BlockLightBlue, true, nil
	case levels.TileGreen:
		return BlockGreen, true, nil
	case levels.TileRed:
		return BlockRed, true, nil
	case levels.TileBlue:
		return BlockBlue, true, nil
	case levels.TilePink:
		return BlockPink, true, nil
	case levels.TileSilver:
		return BlockSilver, true, nil
	case levels.TileGold:
		return BlockGold, true, nil
	default:
		return 0, false, fmt.Errorf("%w: tile %d", ErrUnknownTile, t)
	}
}

// SilverThreshold is the number of hits a silver block takes on a level.
func SilverThreshold(levelIndex int) int {
	return levelIndex/8 + 2
}

// Block is a brick in the level. HitsTaken is only used by silver blocks.
type Block struct {
	Type      BlockType
	HitsTaken int
	Position  physics.Vec2
	Collider  physics.Collider
}

// Hit registers one ball hit and reports whether the block breaks.
func (b *Block) Hit(levelIndex int) bool {
	switch b.Type {
	case BlockSilver:
		b.HitsTaken++
		return b.HitsTaken >= SilverThreshold(levelIndex)
	case BlockGold:
		return false
	default:
		return true
	}
}

// Box returns the block's axis-aligned bounds.
func (b *Block) Box() (physics.Box, error) {
	half, err := b.Collider.AsCuboid()
	if err != nil {
		return physics.Box{}, err
	}
	return physics.Box{Center: b.Position, Half: half}, nil
}

// Layout describes how a tile grid is placed in the field.
type Layout struct {
	FieldHeight float64
	BlockWidth  float64
	BlockHeight float64
	Gap         float64
	TopMargin   float64
}

// SpawnBlocks fills the arena from a level grid. Each row is centred
// horizontally; row 0 sits TopMargin below the top wall.
func SpawnBlocks(arena *Arena[Block], lvl levels.Level, layout Layout) error {
	w, h := layout.BlockWidth, layout.BlockHeight
	top := layout.FieldHeight/2 - layout.TopMargin

	for i, row := range lvl.Tiles {
		rowWidth := float64(len(row))*w + float64(len(row)-1)*layout.Gap
		y := top - h/2 - float64(i)*(h+layout.Gap)

		for j, tile := range row {
			bt, ok, err := blockTypeForTile(tile)
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			if !ok {
				continue
			}
			x := -rowWidth/2 + w/2 + float64(j)*(w+layout.Gap)
			arena.Insert(Block{
				Type:     bt,
				Position: physics.V(x, y),
				Collider: physics.CuboidCollider(w/2, h/2),
			})
		}
	}
	return nil
}
