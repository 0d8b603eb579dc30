package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/physics"

// BallState is the ball's motion mode.
type BallState int

const (
	// BallGlued rides on the paddle at Ball.Percentage of its width.
	BallGlued BallState = iota
	// BallFree moves on its own and collides.
	BallFree
)

// String returns a human-readable name for the state.
func (s BallState) String() string {
	switch s {
	case BallGlued:
		return "glued"
	case BallFree:
		return "free"
	default:
		return "unknown"
	}
}

// Ball defaults.
const (
	DefaultGluedPercentage = 0.5
	DefaultBallSpeed       = 300.0
)

// DefaultBallDirection points straight up.
var DefaultBallDirection = physics.V(0, 1)

// Ball is the single ball in play.
// Direction is a unit vector while Free; Direction and Speed are ignored while Glued.
type Ball struct {
	Position   physics.Vec2
	Direction  physics.Vec2
	Speed      float64
	State      BallState
	Percentage float64 // Glued offset along the paddle, 0 = left edge, 1 = right edge
	Collider   physics.Collider
}

// NewBall creates a ball glued to the middle of the paddle.
func NewBall(radius, speed float64) Ball {
	b := Ball{Collider: physics.BallCollider(radius)}
	b.Reset(speed)
	return b
}

// Reset returns the ball to its initial glued state.
func (b *Ball) Reset(speed float64) {
	b.State = BallGlued
	b.Percentage = DefaultGluedPercentage
	b.Direction = DefaultBallDirection
	b.Speed = speed
}

// Launch frees a glued ball. It reports false when the ball is already free.
func (b *Ball) Launch() bool {
	if b.State != BallGlued {
		return false
	}
	b.State = BallFree
	return true
}

// FollowPaddle places a glued ball on top of the paddle.
// Free balls are left untouched.
func (b *Ball) FollowPaddle(p *Paddle) error {
	if b.State != BallGlued {
		return nil
	}
	if p == nil {
		return ErrNoPaddle
	}
	r, err := b.Collider.AsBall()
	if err != nil {
		return err
	}
	half, err := p.Collider.AsCuboid()
	if err != nil {
		return err
	}

	offset := physics.V(half.X*2*(b.Percentage-0.5), half.Y+r)
	b.Position = p.Position.Add(offset)
	return nil
}
