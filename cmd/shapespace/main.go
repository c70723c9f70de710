package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/shapespace"
	"github.com/osuushi/shapespace/dbg"
)

var (
	samples  = flag.Int("n", 100000, "number of random triangles to sample")
	seed     = flag.Int64("seed", 1, "random seed")
	gridSize = flag.Int("grid", 256, "density grid cells per side")
	out      = flag.String("o", "shapespace.png", "output image path")
	cat      = flag.Bool("cat", false, "print the image to the terminal (iTerm only)")
	pointArg = flag.String("point", "", "invert a single shape space point \"x,y\" instead of sampling")
	verbose  = flag.Bool("v", false, "dump the first few sampled triangles")
)

// Demo of the shape space mapping. By default this samples random triangles,
// projects each onto its shape space point, prints the obtuse-angle census,
// and renders the density image colored by classification. With -point it
// runs the other direction: reconstruct the triangle for one shape space
// point and report its vertices and interior angles.
func main() {
	flag.Parse()
	if *pointArg != "" {
		invert(*pointArg)
		return
	}
	sample()
}

func sample() {
	s := shapespace.NewSampler(*seed)
	d := shapespace.NewDensity(*gridSize)

	if *verbose {
		for i := 0; i < 5; i++ {
			tri := s.Triangle()
			sc, _ := shapespace.MapTriangle(tri)
			fmt.Printf("%s: obtuse=%v point=(%.4f, %.4f)\n",
				dbg.Name(&tri), sc.Obtuse, sc.Point.X, sc.Point.Y)
		}
	}

	counts := d.Accumulate(s, *samples)
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		log.Fatalf("No triangles sampled; -n was %d", *samples)
	}

	fmt.Printf("Sampled %d triangles\n", total)
	order := []shapespace.AngleName{
		shapespace.Alpha, shapespace.Beta, shapespace.Gamma, shapespace.NoAngle,
	}
	for _, name := range order {
		label := name.String() + " obtuse"
		if name == shapespace.NoAngle {
			label = "no obtuse angle"
		}
		fmt.Printf("  %s: %d (%.1f%%)\n",
			colored(name, label), counts[name],
			100*float64(counts[name])/float64(total))
	}

	if err := d.RenderPNG(*out, 2); err != nil {
		log.Fatalf("Could not render density image: %v", err)
	}
	fmt.Println("Wrote", *out)
	if *cat {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func invert(arg string) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		log.Fatalf("Invalid point %q; want \"x,y\"", arg)
	}
	x := parseCoord(parts[0])
	y := parseCoord(parts[1])

	r, ok := shapespace.MapPoint(shapespace.Point{X: x, Y: y})
	if !ok {
		// Routine outcome for a point outside the region, not an error.
		fmt.Println("No triangle corresponds to that point")
		return
	}

	tri := r.Triangle
	fmt.Printf("A = (%9.6f, %9.6f)  alpha = %6.2f deg\n", tri.A.X, tri.A.Y, degrees(r.Alpha))
	fmt.Printf("B = (%9.6f, %9.6f)  beta  = %6.2f deg\n", tri.B.X, tri.B.Y, degrees(r.Beta))
	fmt.Printf("C = (%9.6f, %9.6f)  gamma = %6.2f deg\n", tri.C.X, tri.C.Y, degrees(r.Gamma))

	if err := r.RenderPNG(*out, 512); err != nil {
		log.Fatalf("Could not render triangle image: %v", err)
	}
	fmt.Println("Wrote", *out)
	if *cat {
		imgcat.CatFile(*out, os.Stdout)
	}
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}

func colored(name shapespace.AngleName, label string) string {
	switch name {
	case shapespace.Alpha:
		return aurora.Red(label).String()
	case shapespace.Beta:
		return aurora.Green(label).String()
	case shapespace.Gamma:
		return aurora.Blue(label).String()
	}
	return aurora.White(label).String()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
