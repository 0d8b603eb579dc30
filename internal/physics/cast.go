package physics

import "math"

const epsilon = 1e-12

// Hit is the result of a shape cast. Index identifies the target in the
// slice passed to CastCircleBoxes; TOI is the fraction of the motion vector
// travelled before contact, in [0, 1].
type Hit struct {
	Index int
	TOI   float64
}

// Point returns the circle centre at the time of impact.
func (h Hit) Point(start, motion Vec2) Vec2 {
	return start.Add(motion.Scale(h.TOI))
}

// CastCircle sweeps a circle of the given radius from start along motion
// and reports the first time of impact with box, as a fraction of motion.
// A circle already overlapping the box reports a hit at TOI 0.
//
// The sweep is a ray cast against the Minkowski sum of the box and the
// circle: the box grown by radius horizontally, the box grown by radius
// vertically, and a circle of the same radius on each corner.
func CastCircle(start Vec2, radius float64, motion Vec2, box Box) (float64, bool) {
	if box.OverlapsCircle(start, radius) {
		return 0, true
	}
	if motion.LenSq() < epsilon {
		return 0, false
	}

	best := math.Inf(1)
	if t, ok := rayBox(start, motion, box.Grow(radius, 0)); ok && t < best {
		best = t
	}
	if t, ok := rayBox(start, motion, box.Grow(0, radius)); ok && t < best {
		best = t
	}
	lo, hi := box.Min(), box.Max()
	corners := [4]Vec2{lo, {hi.X, lo.Y}, hi, {lo.X, hi.Y}}
	for _, c := range corners {
		if t, ok := rayCircle(start, motion, c, radius); ok && t < best {
			best = t
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// CastCircleBoxes casts a circle against each box and returns the earliest
// hit. When several boxes share the earliest TOI the lowest index wins.
func CastCircleBoxes(start Vec2, radius float64, motion Vec2, boxes []Box) (Hit, bool) {
	hit := Hit{Index: -1, TOI: math.Inf(1)}
	for i, b := range boxes {
		t, ok := CastCircle(start, radius, motion, b)
		if ok && t < hit.TOI {
			hit = Hit{Index: i, TOI: t}
		}
	}
	if hit.Index < 0 {
		return Hit{}, false
	}
	return hit, true
}

// rayBox intersects the segment p + t*d, t in [0, 1], with a closed box.
// Returns the entry time clamped to zero. A ray that only touches the box
// while leaving it does not count.
func rayBox(p, d Vec2, b Box) (float64, bool) {
	lo, hi := b.Min(), b.Max()
	tmin, tmax := math.Inf(-1), math.Inf(1)

	axes := [2][4]float64{
		{p.X, d.X, lo.X, hi.X},
		{p.Y, d.Y, lo.Y, hi.Y},
	}
	for _, a := range axes {
		pos, dir, amin, amax := a[0], a[1], a[2], a[3]
		if math.Abs(dir) < epsilon {
			if pos < amin || pos > amax {
				return 0, false
			}
			continue
		}
		t1 := (amin - pos) / dir
		t2 := (amax - pos) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmin > tmax || tmax <= 0 || tmin > 1 {
		return 0, false
	}
	return math.Max(tmin, 0), true
}

// rayCircle intersects the segment p + t*d, t in [0, 1], with a circle.
func rayCircle(p, d, c Vec2, r float64) (float64, bool) {
	m := p.Sub(c)
	a := d.Dot(d)
	b := 2 * m.Dot(d)
	k := m.Dot(m) - r*r

	disc := b*b - 4*a*k
	if a < epsilon || disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t1 <= 0 || t0 > 1 {
		return 0, false
	}
	return math.Max(t0, 0), true
}
