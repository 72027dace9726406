package internal

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

type ShapeKind int

const (
	// The zero value. A ShapeMatch of this kind is never returned.
	ShapeUnknown ShapeKind = iota
	ShapeLine
	ShapeArrow
	ShapeRectangle
	ShapeEllipse
	ShapeTriangle
	ShapeDiamond
)

var shapeKindNames = map[ShapeKind]string{
	ShapeUnknown:   "unknown",
	ShapeLine:      "line",
	ShapeArrow:     "arrow",
	ShapeRectangle: "rectangle",
	ShapeEllipse:   "ellipse",
	ShapeTriangle:  "triangle",
	ShapeDiamond:   "diamond",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// A recognized shape. Lines and arrows use the endpoint fields; every other
// kind uses Bounds.
type ShapeMatch struct {
	Kind           ShapeKind
	X1, Y1, X2, Y2 float64
	Bounds         BoundingBox
}

func (m ShapeMatch) String() string {
	switch m.Kind {
	case ShapeLine, ShapeArrow:
		return fmt.Sprintf("%s (%.1f, %.1f) -> (%.1f, %.1f)", m.Kind, m.X1, m.Y1, m.X2, m.Y2)
	default:
		b := m.Bounds
		return fmt.Sprintf("%s at (%.1f, %.1f) size %.1fx%.1f", m.Kind, b.MinX, b.MinY, b.Width, b.Height)
	}
}

// Recognition thresholds. These are tuned by hand and must stay as they are:
// callers rely on the exact behavior.
const (
	minStrokeLength = 20.0

	lineStraightness  = 0.85
	minLineLength     = 30.0
	arrowMinSamples   = 10
	arrowTailFraction = 0.25
	arrowHeadTurn     = math.Pi / 3

	closedFraction = 0.15

	minEllipseRadius    = 10.0
	ellipseMaxError     = 0.25
	ellipseMinLengthRat = 0.7
	ellipseMaxLengthRat = 1.5

	triangleMinSideFraction = 0.15

	rectangleAngleError      = 0.45
	looseRectangleAngleError = 0.7
	diamondMidpointError     = 0.2

	// Smallest width or height a box-shaped match may have.
	minShapeExtent = 2.0
)

// Measurements shared by the recognition tests, computed once per stroke.
type stroke struct {
	points Polyline
	length float64
	direct float64

	// Only filled in once the stroke has passed the closedness gate.
	bounds  BoundingBox
	center  Point
	corners []Corner
}

func newStroke(points Polyline) *stroke {
	s := &stroke{points: points, length: points.Length()}
	if len(points) >= 2 {
		s.direct = Distance(points[0], points[len(points)-1])
	}
	return s
}

func (s *stroke) analyzeClosed() {
	s.bounds = s.points.Bounds()
	s.center = s.bounds.Center()
	s.corners = DetectCorners(s.points)
}

type shapeTest func(s *stroke) (ShapeMatch, bool)

// Run the tests in order and return the first match.
func firstMatch(s *stroke, tests ...shapeTest) (ShapeMatch, bool) {
	for _, test := range tests {
		if m, ok := test(s); ok {
			return m, true
		}
	}
	return ShapeMatch{}, false
}

// Decide whether a raw stroke approximates one of the canonical shapes. The
// order of the tests matters: each one assumes the earlier ones failed.
func Classify(points Polyline) (ShapeMatch, bool) {
	s := newStroke(points)
	if len(points) < 2 || s.length < minStrokeLength {
		return rejectStroke(s, "too short")
	}
	if m, ok := matchLine(s); ok {
		return m, true
	}
	if s.direct >= s.length*closedFraction {
		return rejectStroke(s, "not closed")
	}

	s.analyzeClosed()
	if m, ok := firstMatch(s, matchEllipse, matchTriangle, matchQuadrilateral); ok {
		return m, true
	}
	return rejectStroke(s, "no closed shape fits")
}

func rejectStroke(s *stroke, reason string) (ShapeMatch, bool) {
	Logger().WithFields(logrus.Fields{
		"points":  len(s.points),
		"length":  s.length,
		"corners": len(s.corners),
	}).Debugf("no shape match: %s", reason)
	return ShapeMatch{}, false
}

// A stroke that runs nearly straight from end to end is a line, or an arrow if
// it hooks sharply at the end.
func matchLine(s *stroke) (ShapeMatch, bool) {
	if s.direct/s.length < lineStraightness || s.direct < minLineLength {
		return ShapeMatch{}, false
	}
	first, last := s.points[0], s.points[len(s.points)-1]
	kind := ShapeLine
	if hasArrowHead(s.points) {
		kind = ShapeArrow
	}
	return ShapeMatch{Kind: kind, X1: first.X, Y1: first.Y, X2: last.X, Y2: last.Y}, true
}

// Look for a sharp turn in the last quarter of the samples.
func hasArrowHead(points Polyline) bool {
	n := len(points)
	if n < arrowMinSamples {
		return false
	}
	tail := points[int(float64(n)*(1-arrowTailFraction)):]
	var maxTurn float64
	for i := 1; i < len(tail)-1; i++ {
		turn := math.Pi - AngleBetween(tail[i-1], tail[i], tail[i+1])
		maxTurn = math.Max(maxTurn, turn)
	}
	return maxTurn > arrowHeadTurn
}

func matchEllipse(s *stroke) (ShapeMatch, bool) {
	if len(s.corners) > 3 {
		return ShapeMatch{}, false
	}
	rx := s.bounds.Width / 2
	ry := s.bounds.Height / 2
	if rx < minEllipseRadius || ry < minEllipseRadius {
		return ShapeMatch{}, false
	}

	var totalError float64
	for _, p := range s.points {
		dx := (p.X - s.center.X) / rx
		dy := (p.Y - s.center.Y) / ry
		totalError += math.Abs(math.Sqrt(dx*dx+dy*dy) - 1)
	}
	avgError := totalError / float64(len(s.points))
	lengthRatio := s.length / EllipsePerimeter(rx, ry)

	if avgError < ellipseMaxError && lengthRatio > ellipseMinLengthRat && lengthRatio < ellipseMaxLengthRat {
		return ShapeMatch{Kind: ShapeEllipse, Bounds: s.bounds}, true
	}
	return ShapeMatch{}, false
}

// Ramanujan's approximation of the perimeter of an ellipse.
func EllipsePerimeter(rx, ry float64) float64 {
	if rx+ry == 0 {
		return 0
	}
	h := math.Pow((rx-ry)/(rx+ry), 2)
	return math.Pi * (rx + ry) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

func matchTriangle(s *stroke) (ShapeMatch, bool) {
	if len(s.corners) != 3 || !boxIsUsable(s.bounds) {
		return ShapeMatch{}, false
	}
	a, b, c := s.corners[0].Point, s.corners[1].Point, s.corners[2].Point
	sides := []float64{Distance(a, b), Distance(b, c), Distance(c, a)}
	perimeter := sides[0] + sides[1] + sides[2]
	shortest := math.Min(sides[0], math.Min(sides[1], sides[2]))
	if shortest < perimeter*triangleMinSideFraction {
		return ShapeMatch{}, false
	}
	return ShapeMatch{Kind: ShapeTriangle, Bounds: s.bounds}, true
}

func matchQuadrilateral(s *stroke) (ShapeMatch, bool) {
	if len(s.corners) < 3 || len(s.corners) > 5 || !boxIsUsable(s.bounds) {
		return ShapeMatch{}, false
	}
	quad, ok := reduceToFourCorners(s.corners, s.center)
	if !ok {
		return ShapeMatch{}, false
	}
	sortClockwise(quad[:], s.center)

	var angleError float64
	for i := range quad {
		prev := quad[CircularIndex(i-1, 4)]
		next := quad[CircularIndex(i+1, 4)]
		angleError += math.Abs(AngleBetween(prev, quad[i], next) - math.Pi/2)
	}
	angleError /= 4
	if angleError < rectangleAngleError {
		return ShapeMatch{Kind: ShapeRectangle, Bounds: s.bounds}, true
	}

	// A diamond touches the middle of each side of its bounding box.
	midpoints := s.bounds.EdgeMidpoints()
	var diamondError float64
	for _, p := range quad {
		nearest := math.Inf(1)
		for _, m := range midpoints {
			nearest = math.Min(nearest, Distance(p, m))
		}
		diamondError += nearest
	}
	diamondError /= 4
	if diamondError < diamondMidpointError*s.bounds.Diagonal() {
		return ShapeMatch{Kind: ShapeDiamond, Bounds: s.bounds}, true
	}

	if angleError < looseRectangleAngleError {
		return ShapeMatch{Kind: ShapeRectangle, Bounds: s.bounds}, true
	}
	return ShapeMatch{}, false
}

// Exactly four corners are used as they are. With more, keep the corner
// farthest from the center in each quadrant of the bounding box; an empty
// quadrant means this isn't a quadrilateral. Fewer than four can't be reduced.
func reduceToFourCorners(corners []Corner, center Point) ([4]Point, bool) {
	var quad [4]Point
	if len(corners) == 4 {
		for i, c := range corners {
			quad[i] = c.Point
		}
		return quad, true
	}
	if len(corners) < 4 {
		return quad, false
	}

	var found [4]bool
	var best [4]float64
	for _, c := range corners {
		q := quadrantOf(c.Point, center)
		d := Distance(c.Point, center)
		if !found[q] || d > best[q] {
			found[q] = true
			best[q] = d
			quad[q] = c.Point
		}
	}
	for _, ok := range found {
		if !ok {
			return quad, false
		}
	}
	return quad, true
}

// Quadrants in screen orientation: 0 top-left, 1 top-right, 2 bottom-right,
// 3 bottom-left.
func quadrantOf(p, center Point) int {
	left := p.X < center.X
	top := p.Y < center.Y
	switch {
	case top && left:
		return 0
	case top:
		return 1
	case !left:
		return 2
	default:
		return 3
	}
}

// With y pointing down, increasing polar angle runs clockwise on screen.
func sortClockwise(points []Point, center Point) {
	sort.SliceStable(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-center.Y, points[i].X-center.X)
		aj := math.Atan2(points[j].Y-center.Y, points[j].X-center.X)
		return ai < aj
	})
}

func boxIsUsable(b BoundingBox) bool {
	return b.Width >= minShapeExtent && b.Height >= minShapeExtent
}
