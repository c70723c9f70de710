package internal

import "math"

const Tolerance = 1e-6

// Float comparisons are tolerance based. The mappings run through enough trig
// that exact comparison is hopeless anywhere near the region boundary.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func distSq(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// SquaredSides returns the squared side lengths in opposite-vertex order:
// a2 faces A, b2 faces B, c2 faces C.
func (t Triangle) SquaredSides() (a2, b2, c2 float64) {
	return distSq(t.B, t.C), distSq(t.A, t.C), distSq(t.A, t.B)
}

func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}
