package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

// The vertices should come out as unit normals per axis. With 60000 draws per
// axis the deltas below sit far outside plausible sampling noise, so this
// won't flake, but it will catch a broken transform.
func TestSamplerMoments(t *testing.T) {
	s := NewSampler(42)
	n := 20000
	xs := make([]float64, 0, 3*n)
	ys := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		tri := s.Triangle()
		for _, p := range []Point{tri.A, tri.B, tri.C} {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	assert.InDelta(t, 0, stat.Mean(xs, nil), 0.05)
	assert.InDelta(t, 0, stat.Mean(ys, nil), 0.05)
	assert.InDelta(t, 1, stat.Variance(xs, nil), 0.05)
	assert.InDelta(t, 1, stat.Variance(ys, nil), 0.05)
}

func TestSamplerDeterministic(t *testing.T) {
	assert.Equal(t, NewSampler(7).Triangle(), NewSampler(7).Triangle())
	assert.NotEqual(t, NewSampler(7).Triangle(), NewSampler(8).Triangle())
}

func TestSamplerFresh(t *testing.T) {
	s := NewSampler(1)
	seen := map[Triangle]struct{}{}
	for i := 0; i < 100; i++ {
		tri := s.Triangle()
		_, dup := seen[tri]
		assert.False(t, dup)
		seen[tri] = struct{}{}
	}
}
