package arkanoid

import (
	"errors"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid/levels"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Fatal round errors. Any of these aborts the current round.
var (
	// ErrMissingAsset means setup data (levels, sizes) needed to start a round is absent.
	ErrMissingAsset = errors.New("arkanoid: missing asset")

	// ErrNoPaddle means the single paddle the resolver expects does not exist.
	ErrNoPaddle = errors.New("arkanoid: no paddle")

	// ErrShapeMismatch is re-exported from physics for callers matching on round errors.
	ErrShapeMismatch = physics.ErrShapeMismatch

	// ErrUnknownTile is re-exported from levels for callers matching on round errors.
	ErrUnknownTile = levels.ErrUnknownTile
)
