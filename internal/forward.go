package internal

import "math"

// ShapeClass is the image of a triangle in shape space: the point standing
// for its similarity class, and which interior angle, if any, is obtuse.
type ShapeClass struct {
	Point  Point
	Obtuse AngleName
}

// MapTriangle projects a triangle onto its shape space point. The squared
// side lengths are normalized to sum to 1, which quotients out scale
// (translation and rotation never entered, since only distances are used),
// then mapped off the simplex by
//
//	x = a2 - (b2+c2)/2
//	y = (sqrt(3)/2) * (b2 - c2)
//
// This projection is chosen so that relabeling which vertex comes first
// rotates the image by 120 degrees about the origin, and so that it inverts
// with a two-equation linear solve (see MapPoint).
//
// The second return is false for the one input with no shape: all three
// vertices coincident.
func MapTriangle(t Triangle) (ShapeClass, bool) {
	a2, b2, c2 := t.SquaredSides()
	sum := a2 + b2 + c2
	if sum == 0 {
		return ShapeClass{}, false
	}
	scale := 1 / sum
	a2 *= scale
	b2 *= scale
	c2 *= scale

	sc := ShapeClass{
		Point: Point{
			X: a2 - (b2+c2)/2,
			Y: math.Sqrt(3) / 2 * (b2 - c2),
		},
	}

	// Law of cosines sign test. At most one squared side can exceed the sum
	// of the other two; if float noise at a right angle makes two conditions
	// look true, the first in this order wins.
	switch {
	case a2 > b2+c2:
		sc.Obtuse = Alpha
	case b2 > a2+c2:
		sc.Obtuse = Beta
	case c2 > a2+b2:
		sc.Obtuse = Gamma
	}
	return sc, true
}
