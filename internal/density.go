package internal

// Census classifies n fresh samples and counts them by obtuse angle. This is
// a pure fold; every AngleName appears in the result, possibly with a zero
// count. A degenerate sample (all three vertices coincident) is skipped, not
// an error, though with a normal sampler it effectively never happens.
func Census(s *Sampler, n int) map[AngleName]int {
	counts := map[AngleName]int{NoAngle: 0, Alpha: 0, Beta: 0, Gamma: 0}
	for i := 0; i < n; i++ {
		if sc, ok := MapTriangle(s.Triangle()); ok {
			counts[sc.Obtuse]++
		}
	}
	return counts
}

// Density bins shape space hits on a fixed square grid spanning [-1,1] on
// both axes, keeping a separate count per classification in each cell. It is
// the data behind the "many random triangles" view; drawing lives elsewhere.
type Density struct {
	Size  int
	cells []densityCell
	max   int // occupancy of the fullest cell, for display normalization
}

// Counts indexed by AngleName.
type densityCell [4]int

func NewDensity(size int) *Density {
	return &Density{
		Size:  size,
		cells: make([]densityCell, size*size),
	}
}

// Add bins one classified shape point. Points outside the grid span are
// ignored; the whole valid region fits well inside it.
func (d *Density) Add(sc ShapeClass) {
	ix := int((sc.Point.X + 1) / 2 * float64(d.Size))
	iy := int((sc.Point.Y + 1) / 2 * float64(d.Size))
	if ix < 0 || ix >= d.Size || iy < 0 || iy >= d.Size {
		return
	}
	cell := &d.cells[iy*d.Size+ix]
	cell[sc.Obtuse]++
	if total := cell.total(); total > d.max {
		d.max = total
	}
}

// Accumulate folds n fresh samples into the grid and returns their census.
func (d *Density) Accumulate(s *Sampler, n int) map[AngleName]int {
	counts := map[AngleName]int{NoAngle: 0, Alpha: 0, Beta: 0, Gamma: 0}
	for i := 0; i < n; i++ {
		sc, ok := MapTriangle(s.Triangle())
		if !ok {
			continue
		}
		counts[sc.Obtuse]++
		d.Add(sc)
	}
	return counts
}

func (c *densityCell) total() int {
	return c[0] + c[1] + c[2] + c[3]
}

// dominant returns the classification with the most hits in the cell.
func (c *densityCell) dominant() AngleName {
	best := NoAngle
	for name := Alpha; name <= Gamma; name++ {
		if c[name] > c[best] {
			best = name
		}
	}
	return best
}
