package arkanoid

import "math"

// Snapshot contains the complete run state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Campaign, 1=Endless
	State      string
	Score      int
	Lives      int
	LevelIndex int

	PaddleX float64

	BallX, BallY   float64
	BallDX, BallDY float64
	BallSpeed      float64
	BallState      int
	BallPercentage float64

	// Live blocks in arena order, 3 ints each: slot index, type, hits taken
	BlockData []int
}

// Snapshot returns the current run state.
func (g *Game) Snapshot() Snapshot {
	var blockData []int
	if g.blocks != nil {
		blockData = make([]int, 0, g.blocks.Len()*3)
		g.blocks.Each(func(h Handle, b *Block) {
			blockData = append(blockData, h.Index(), int(b.Type), b.HitsTaken)
		})
	}

	var paddleX float64
	if g.paddle != nil {
		paddleX = g.paddle.Position.X
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Mode:       int(g.mode),
		State:      g.state,
		Score:      g.score,
		Lives:      g.lives.Remaining(),
		LevelIndex: g.levelIndex,

		PaddleX: paddleX,

		BallX:          g.ball.Position.X,
		BallY:          g.ball.Position.Y,
		BallDX:         g.ball.Direction.X,
		BallDY:         g.ball.Direction.Y,
		BallSpeed:      g.ball.Speed,
		BallState:      int(g.ball.State),
		BallPercentage: g.ball.Percentage,

		BlockData: blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallState)  //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PaddleX,
		snap.BallX, snap.BallY,
		snap.BallDX, snap.BallDY,
		snap.BallSpeed, snap.BallPercentage,
	} {
		h = h*31 + math.Float64bits(f)
	}

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
