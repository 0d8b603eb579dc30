package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/physics"

// Paddle is the player's bat. Position is its centre.
type Paddle struct {
	Position physics.Vec2
	Collider physics.Collider
	Speed    float64
}

// NewPaddle creates a paddle centred horizontally at the given altitude.
func NewPaddle(width, height, altitude, speed float64) *Paddle {
	return &Paddle{
		Position: physics.V(0, altitude),
		Collider: physics.CuboidCollider(width/2, height/2),
		Speed:    speed,
	}
}

// Box returns the paddle's axis-aligned bounds.
func (p *Paddle) Box() (physics.Box, error) {
	half, err := p.Collider.AsCuboid()
	if err != nil {
		return physics.Box{}, err
	}
	return physics.Box{Center: p.Position, Half: half}, nil
}

// Move applies one tick of paddle input: the cursor position first, then the
// movement axis scaled by speed and dt, then the clamp that keeps the paddle
// inside a field of the given width.
func (p *Paddle) Move(in PaddleInput, dt, fieldWidth float64) {
	if in.HasPointer {
		p.Position.X = in.PointerX
	}
	p.Position.X += in.Movement * p.Speed * dt

	bound := (fieldWidth - p.Collider.Half.X*2) / 2
	if bound < 0 {
		bound = 0
	}
	switch {
	case p.Position.X < -bound:
		p.Position.X = -bound
	case p.Position.X > bound:
		p.Position.X = bound
	}
}

// PaddleInput is the part of a frame's input that drives the paddle.
type PaddleInput struct {
	Movement   float64
	PointerX   float64
	HasPointer bool
}
