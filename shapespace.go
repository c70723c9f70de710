// A visualization core for the shape space of triangles.
//
// Every triangle, up to similarity (position, rotation and scale ignored),
// corresponds to a single point in a bounded region of the plane, and every
// point of that region corresponds back to a representative triangle. This
// package implements that mapping in both directions, classifies triangles
// by their obtuse angle, and samples random triangles to build a density
// picture of the region.
package shapespace

import "github.com/osuushi/shapespace/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type AngleName = internal.AngleName
type ShapeClass = internal.ShapeClass
type Reconstruction = internal.Reconstruction
type Sampler = internal.Sampler
type Density = internal.Density

const (
	NoAngle = internal.NoAngle
	Alpha   = internal.Alpha
	Beta    = internal.Beta
	Gamma   = internal.Gamma
)

// MapTriangle projects a triangle onto its shape space point and reports
// which of its angles, if any, is obtuse. Returns false for a degenerate
// triangle (all three vertices coincident), which has no shape.
func MapTriangle(t Triangle) (ShapeClass, bool) {
	return internal.MapTriangle(t)
}

// MapPoint reconstructs a normalized representative triangle for a shape
// space point, along with its interior angles. Returns false for points no
// triangle maps to; callers should treat that as "nothing to display", since
// it is the routine result of wandering outside the region.
func MapPoint(p Point) (Reconstruction, bool) {
	return internal.MapPoint(p)
}

// NewSampler returns a deterministic source of random triangles whose
// vertices are independent unit bivariate normals.
func NewSampler(seed int64) *Sampler {
	return internal.NewSampler(seed)
}

// NewDensity returns an empty density grid of size cells per side covering
// [-1,1] on both axes of shape space.
func NewDensity(size int) *Density {
	return internal.NewDensity(size)
}

// Census classifies n fresh samples from s and counts them by obtuse angle.
func Census(s *Sampler, n int) map[AngleName]int {
	return internal.Census(s, n)
}
