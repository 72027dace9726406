package internal

import (
	"embed"
	"log"
	"math"
)

// Test scenes live in the fixtures/ directory as SVG, and are loaded by name
// sans extension. Strokes are built in code: a hand-drawn stroke is modelled
// as an outline sampled every few units, which is how the pointer delivers
// them.

//go:embed fixtures
var fixtures embed.FS

// Slack for comparisons that go through trigonometry or division.
const Tolerance = 1e-6

func LoadFixture(name string) Scene {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	scene, err := ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return scene
}

func mustFind(scene Scene, id ElementID) Element {
	e, ok := scene.Find(id)
	if !ok {
		log.Fatalf("No element %q in fixture", id)
	}
	return e
}

// A closed stroke tracing outline (which must end where it starts), but
// starting from the middle of the first edge the way people rarely start
// exactly on a corner.
func strokeAround(outline Polyline, spacing float64) Polyline {
	start := outline[0].Lerp(outline[1], 0.5)
	rolled := Polyline{start}
	rolled = append(rolled, outline[1:]...)
	rolled = append(rolled, start)
	return rolled.Resample(spacing)
}

func ellipseStroke(cx, cy, rx, ry float64, samples int) Polyline {
	pl := make(Polyline, 0, samples+1)
	for i := 0; i <= samples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samples)
		pl = append(pl, Point{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)})
	}
	return pl
}

// A horizontal stroke from (0, 0) to (length, 0) sampled every step units.
func straightStroke(length, step float64) Polyline {
	var pl Polyline
	for x := 0.0; x <= length+Tolerance; x += step {
		pl = append(pl, Point{x, 0})
	}
	return pl
}

// A 200x100 diamond with each vertex nudged off its axis, drawn with a
// short hook into the top and bottom vertices. The hooks make those vertices
// register as corners even though the diamond's own angles there are wide.
func hookedDiamond() Polyline {
	outline := Polyline{
		{0, 55}, {95, 20}, {95, 0}, {200, 45}, {105, 80}, {105, 100}, {0, 55},
	}
	return strokeAround(outline, 5)
}
