package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Field is the per-tick context for the motion resolver: the play field
// size (centred on the origin) and the frame delta in seconds.
type Field struct {
	Width  float64
	Height float64
	Delta  float64
}

// ResolveMotion advances the ball by one tick.
//
// A glued ball is placed on the paddle. A free ball is integrated along its
// direction, reflected off the top and side walls, then cast from its current
// position along the unreflected move vector: once against the paddle and
// once against the blocks. Paddle hits from above redirect the ball by where
// it struck; block hits reflect the axis that was crossed and emit BlockHit.
// The resolver keeps no state between calls.
func ResolveMotion(f Field, ball *Ball, paddle *Paddle, blocks *Arena[Block], ev *core.Events) error {
	if paddle == nil {
		return ErrNoPaddle
	}
	if ball.State == BallGlued {
		return ball.FollowPaddle(paddle)
	}

	r, err := ball.Collider.AsBall()
	if err != nil {
		return err
	}
	paddleBox, err := paddle.Box()
	if err != nil {
		return err
	}

	start := ball.Position
	move := ball.Direction.Scale(f.Delta * ball.Speed)
	dest := start.Add(move)

	// Top wall
	if dest.Y+r > f.Height/2 {
		ball.Direction.Y = -ball.Direction.Y
		dest.Y = f.Height/2 - r
	}

	// Side walls
	if limit := f.Width/2 - r; math.Abs(dest.X) > limit {
		dest.X = math.Max(-limit, math.Min(limit, dest.X))
		ball.Direction.X = -ball.Direction.X
	}

	// Paddle
	if toi, ok := physics.CastCircle(start, r, move, paddleBox); ok {
		ev.Play(core.CueBounce)

		cp := start.Add(move.Scale(toi))
		top := paddleBox.Center.Y + paddleBox.Half.Y
		if cp.Y >= top {
			rel := (cp.X - paddleBox.Center.X) / paddleBox.Half.X
			ball.Direction = physics.V(rel/2, 1).Normalize()
			dest = physics.V(cp.X, top+r+1)
		}
	}

	// Blocks
	handles, boxes, err := blockBoxes(blocks)
	if err != nil {
		return err
	}
	if hit, ok := physics.CastCircleBoxes(start, r, move, boxes); ok {
		box := boxes[hit.Index]
		cp := hit.Point(start, move)
		lo, hi := box.Min(), box.Max()

		switch {
		case cp.Y <= lo.Y || cp.Y >= hi.Y:
			ball.Direction = physics.V(ball.Direction.X, -ball.Direction.Y).Normalize()
			dest = physics.V(cp.X, cp.Y+physics.Signum(ball.Direction.Y))
		case cp.X <= lo.X || cp.X >= hi.X:
			ball.Direction = physics.V(-ball.Direction.X, ball.Direction.Y).Normalize()
			dest = physics.V(cp.X+physics.Signum(ball.Direction.X), cp.Y)
		}
		// Inside both extents (corner contact or starting overlap): no bounce.

		ev.Emit(core.EventBlockHit, handles[hit.Index].ID())
	}

	ball.Position = dest
	return nil
}

// blockBoxes collects block bounds in arena order.
func blockBoxes(blocks *Arena[Block]) ([]Handle, []physics.Box, error) {
	if blocks == nil {
		return nil, nil, nil
	}
	handles := make([]Handle, 0, blocks.Len())
	boxes := make([]physics.Box, 0, blocks.Len())

	var err error
	blocks.Each(func(h Handle, b *Block) {
		if err != nil {
			return
		}
		box, berr := b.Box()
		if berr != nil {
			err = berr
			return
		}
		handles = append(handles, h)
		boxes = append(boxes, box)
	})
	return handles, boxes, err
}
