package physics

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a collider does not have the shape an
// operation requires (for example a cuboid where a ball is expected).
var ErrShapeMismatch = errors.New("physics: collider shape mismatch")

// ShapeKind identifies the geometry of a collider.
type ShapeKind int

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBall:
		return "ball"
	case ShapeCuboid:
		return "cuboid"
	default:
		return "unknown"
	}
}

// Collider describes a shape attached to an entity.
// Radius is meaningful for balls, Half for cuboids.
type Collider struct {
	Kind   ShapeKind
	Radius float64
	Half   Vec2
}

// BallCollider creates a circular collider.
func BallCollider(radius float64) Collider {
	return Collider{Kind: ShapeBall, Radius: radius}
}

// CuboidCollider creates an axis-aligned box collider from half extents.
func CuboidCollider(hx, hy float64) Collider {
	return Collider{Kind: ShapeCuboid, Half: Vec2{hx, hy}}
}

// AsBall returns the radius, or ErrShapeMismatch if this is not a ball.
func (c Collider) AsBall() (float64, error) {
	if c.Kind != ShapeBall {
		return 0, fmt.Errorf("want ball, got %s: %w", c.Kind, ErrShapeMismatch)
	}
	return c.Radius, nil
}

// AsCuboid returns the half extents, or ErrShapeMismatch if this is not a cuboid.
func (c Collider) AsCuboid() (Vec2, error) {
	if c.Kind != ShapeCuboid {
		return Vec2{}, fmt.Errorf("want cuboid, got %s: %w", c.Kind, ErrShapeMismatch)
	}
	return c.Half, nil
}

// Box is an axis-aligned rectangle given by its centre and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Grow returns the box expanded by dx and dy on each side.
func (b Box) Grow(dx, dy float64) Box {
	return Box{Center: b.Center, Half: Vec2{b.Half.X + dx, b.Half.Y + dy}}
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	return p.Clamp(b.Min(), b.Max())
}

// OverlapsCircle reports whether a circle strictly overlaps the box.
// Touching does not count as overlap.
func (b Box) OverlapsCircle(center Vec2, radius float64) bool {
	return b.ClosestPoint(center).Sub(center).LenSq() < radius*radius
}
