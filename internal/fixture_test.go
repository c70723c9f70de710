package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Fixture triangles are stored as three-point SVG polygons, available by name
// in the fixtures/ directory, sans extension. This is nowhere near a full SVG
// parser; if anything goes wrong, it panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Triangle {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Fixture %q should hold exactly one polygon, found %d", name, len(polygons))
	}

	points := []Point{}
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	if len(points) != 3 {
		log.Fatalf("Fixture %q is not a triangle: %d points", name, len(points))
	}
	return Triangle{A: points[0], B: points[1], C: points[2]}
}
