package internal

// Everything in this package is a transient value computed per call. Unlike a
// polygon mesh there is no identity to preserve between calls, so points and
// triangles are plain values rather than pointers.

type Point struct {
	X float64
	Y float64
}

// A Triangle's vertex order matters. A, B and C carry the interior angles
// alpha, beta and gamma respectively, and each side is named for the vertex
// it faces: side "a" joins B and C, side "b" joins A and C, side "c" joins A
// and B.
type Triangle struct {
	A, B, C Point
}

// AngleName identifies one of a triangle's interior angles, or none of them.
type AngleName int

const (
	NoAngle AngleName = iota // acute or right triangle
	Alpha
	Beta
	Gamma
)

func (a AngleName) String() string {
	switch a {
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Gamma:
		return "gamma"
	}
	return "none"
}
