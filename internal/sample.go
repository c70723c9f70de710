package internal

import (
	"math"
	"math/rand"
)

// Sampler draws random triangles whose vertices are independent bivariate
// normals with unit variance per axis. That distribution is symmetric under
// rotation and uniform scaling, so it has no preferred direction or size to
// bias the induced distribution over similarity classes.
//
// The only state is the uniform source, so a Sampler is not safe for
// concurrent use.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Triangle returns one fresh, independent triangle per call.
func (s *Sampler) Triangle() Triangle {
	return Triangle{
		A: s.normalPair(),
		B: s.normalPair(),
		C: s.normalPair(),
	}
}

// normalPair is the polar form of the Box-Muller transform: two independent
// unit normals from two independent uniforms.
func (s *Sampler) normalPair() Point {
	u := s.rng.Float64()
	for u == 0 { // Float64 can return exactly 0, which Log can't take
		u = s.rng.Float64()
	}
	r := math.Sqrt(-2 * math.Log(u))
	theta := 2 * math.Pi * s.rng.Float64()
	return Point{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
	}
}
