// Package physics provides the floating-point geometry used by the ball
// simulation: 2D vectors, collider shapes and swept circle casts against
// axis-aligned boxes. World space has its origin at the centre of the play
// field with +Y pointing up.
package physics

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector pointing the same way.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Clamp restricts each component to the box [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// Signum returns 1 for positive values (including +0) and -1 for negative
// values (including -0).
func Signum(x float64) float64 {
	return math.Copysign(1, x)
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
