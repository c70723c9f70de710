package internal

import "math"

// Reconstruction is a concrete triangle standing in for a shape space point,
// together with its interior angles in radians. The triangle is normalized:
// centroid at the origin, squared side lengths summing to 1.
type Reconstruction struct {
	Triangle           Triangle
	Alpha, Beta, Gamma float64
}

// MapPoint reconstructs a representative triangle for a shape space point, in
// the same centered unit-scale coordinates MapTriangle emits. The second
// return is false when no triangle maps there: either the point lies outside
// the projected simplex (some squared side length would be negative), or the
// recovered cosines land outside [-1, 1]. Both are routine outcomes for
// points near or past the region boundary, not failures.
func MapPoint(pt Point) (Reconstruction, bool) {
	// Invert the linear projection under the constraint a2+b2+c2 = 1.
	p := (1 - pt.X) / 3
	q := pt.Y / math.Sqrt(3)
	a2 := p + pt.X
	b2 := p + q
	c2 := p - q
	if a2 < 0 || b2 < 0 || c2 < 0 {
		return Reconstruction{}, false
	}

	// Law of cosines, inverted. A degenerate corner of the region produces
	// 0/0 here; NaN must fail the range check along with |cos| > 1.
	cosA := (0.5 - a2) / math.Sqrt(b2*c2)
	cosB := (0.5 - b2) / math.Sqrt(a2*c2)
	cosC := (0.5 - c2) / math.Sqrt(a2*b2)
	for _, cos := range [3]float64{cosA, cosB, cosC} {
		if math.IsNaN(cos) || math.Abs(cos) > 1 {
			return Reconstruction{}, false
		}
	}
	alpha := math.Acos(cosA)
	beta := math.Acos(cosB)
	gamma := math.Acos(cosC)

	// Place the vertices on the unit circle. By the inscribed angle theorem a
	// vertex's interior angle is half the central angle of the opposite arc,
	// hence the doubled angles; B winds the other way from C so that the arc
	// between them, away from A, spans 2*(beta+gamma)'s complement.
	tri := Triangle{
		A: Point{1, 0},
		B: Point{math.Cos(-2 * gamma), math.Sin(-2 * gamma)},
		C: Point{math.Cos(2 * beta), math.Sin(2 * beta)},
	}

	// Rescale so the squared sides sum to 1 again, then recenter.
	sa, sb, sc := tri.SquaredSides()
	k := 1 / math.Sqrt(sa+sb+sc)
	cen := tri.Centroid()
	for _, v := range []*Point{&tri.A, &tri.B, &tri.C} {
		v.X = (v.X - cen.X) * k
		v.Y = (v.Y - cen.Y) * k
	}

	return Reconstruction{
		Triangle: tri,
		Alpha:    alpha,
		Beta:     beta,
		Gamma:    gamma,
	}, true
}
