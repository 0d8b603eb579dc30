package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

// Result summarises a replayed run.
type Result struct {
	State core.GameState
	Ticks int
	Hash  uint64
}

// Outcome names how the run ended.
func (r Result) Outcome() string {
	switch {
	case r.State.GameOver && r.State.Won:
		return "complete"
	case r.State.GameOver:
		return "gameover"
	case r.State.Won:
		return "level_clear"
	default:
		return "unfinished"
	}
}

// Play re-simulates a recording without a terminal.
func Play(rec *Recording) (Result, error) {
	mode := arkanoid.ModeCampaign
	switch rec.Header.GameID {
	case "arkanoid":
	case "arkanoid_endless":
		mode = arkanoid.ModeEndless
	default:
		return Result{}, fmt.Errorf("%w: unknown game %q", ErrBadRecording, rec.Header.GameID)
	}

	g := arkanoid.NewWithLevels(mode, rec.Header.Config, rec.Header.Levels, rec.Header.StartLevel)
	if err := g.Reset(core.DefaultConfig()); err != nil {
		return Result{}, err
	}

	res := Result{State: g.State()}
	for i, f := range rec.Frames {
		step := g.Step(f.Input(), f.Duration())
		res.State = step.State
		res.Ticks = i + 1
		if step.Err != nil {
			return res, fmt.Errorf("frame %d: %w", i, step.Err)
		}
	}

	snap := g.Snapshot()
	res.Hash = snap.Hash()
	return res, nil
}
