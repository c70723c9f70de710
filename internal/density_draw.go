package internal

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the drawn region, in pixels.
const drawPadding = 20

// Fill colors indexed by AngleName: gray for no obtuse angle, then one color
// per vertex so the three lobes of the region are distinguishable.
var angleColors = [4][3]float64{
	{0.85, 0.85, 0.85},
	{0.9, 0.25, 0.2},
	{0.2, 0.8, 0.35},
	{0.3, 0.5, 1},
}

// RenderPNG draws the accumulated density to a PNG, scale pixels per grid
// cell. Each occupied cell is filled with its dominant classification's
// color, brightness following occupancy relative to the fullest cell.
func (d *Density) RenderPNG(path string, scale float64) error {
	side := int(scale*float64(d.Size)) + drawPadding*2
	c := gg.NewContext(side, side)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(side), float64(side))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(side))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	for iy := 0; iy < d.Size; iy++ {
		for ix := 0; ix < d.Size; ix++ {
			cell := &d.cells[iy*d.Size+ix]
			total := cell.total()
			if total == 0 {
				continue
			}
			col := angleColors[cell.dominant()]
			// Square root lifts sparse cells into visibility
			alpha := sqrtRatio(total, d.max)
			c.SetRGBA(col[0], col[1], col[2], alpha)
			c.DrawRectangle(float64(ix), float64(iy), 1, 1)
			c.Fill()
		}
	}

	return errors.Wrapf(c.SavePNG(path), "saving density image %q", path)
}

// RenderPNG draws the reconstructed triangle alone on a square canvas with
// its vertices labeled.
func (r Reconstruction) RenderPNG(path string, side int) error {
	c := gg.NewContext(side, side)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(side), float64(side))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then center it.
	// The normalized triangle is inscribed in a circle of circumradius at
	// most 1, so scale by a bit less than half the canvas.
	c.Translate(0, float64(side))
	c.Scale(1, -1)
	c.Translate(float64(side)/2, float64(side)/2)
	scale := float64(side)/2 - drawPadding
	c.Scale(scale, scale)

	tri := r.Triangle
	c.MoveTo(tri.A.X, tri.A.Y)
	c.LineTo(tri.B.X, tri.B.Y)
	c.LineTo(tri.C.X, tri.C.Y)
	c.ClosePath()
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	// Labels are drawn back in device space so they aren't mirrored by the
	// flipped context.
	c.SetRGB(1, 1, 1)
	for _, v := range []struct {
		name  string
		point Point
	}{{"A", tri.A}, {"B", tri.B}, {"C", tri.C}} {
		x, y := c.TransformPoint(v.point.X*1.12, v.point.Y*1.12)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(v.name, x, y, 0.5, 0.5)
		c.Pop()
	}

	return errors.Wrapf(c.SavePNG(path), "saving triangle image %q", path)
}

func sqrtRatio(n, max int) float64 {
	if max == 0 {
		return 0
	}
	return math.Sqrt(float64(n) / float64(max))
}
