package internal

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	ellipseSamples = 120
	cornerArcSteps = 8
	hexagonSides   = 6
)

// Sample an element's outline as a polyline, for intersection tests. Kinds we
// don't know fall back to the element's bounding rectangle. Returns false if
// the outline would have fewer than two points.
func ToPolyline(e Element) (Polyline, bool) {
	var pl Polyline
	switch e.Kind {
	case KindEllipse:
		pl = ellipsePolyline(e)
	case KindRectangle:
		pl = rectanglePolyline(e)
	case KindRoundedRectangle:
		pl = roundedRectanglePolyline(e)
	case KindDiamond:
		pl = diamondPolyline(e)
	case KindTriangle:
		pl = trianglePolyline(e)
	case KindHexagon:
		pl = hexagonPolyline(e)
	case KindLine, KindArrow:
		pl = linePolyline(e)
	case KindPath:
		pl = pathPolyline(e)
	default:
		Logger().WithFields(logrus.Fields{
			"id":   e.ID,
			"kind": e.Kind,
		}).Debug("unsupported element kind, using its bounding rectangle")
		pl = rectanglePolyline(e)
	}
	if len(pl) < 2 {
		return nil, false
	}
	return pl, true
}

func ellipsePolyline(e Element) Polyline {
	c := e.Bounds().Center()
	rx, ry := e.Width/2, e.Height/2
	pl := make(Polyline, 0, ellipseSamples+1)
	for i := 0; i < ellipseSamples; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSamples
		pl = append(pl, Point{c.X + rx*math.Cos(theta), c.Y + ry*math.Sin(theta)})
	}
	return append(pl, pl[0])
}

func rectanglePolyline(e Element) Polyline {
	b := e.Bounds()
	return Polyline{
		{b.MinX, b.MinY},
		{b.MaxX(), b.MinY},
		{b.MaxX(), b.MaxY()},
		{b.MinX, b.MaxY()},
		{b.MinX, b.MinY},
	}
}

// Straight edges joined by quarter arcs. The arcs' endpoints are the edge
// endpoints, so each corner contributes cornerArcSteps+1 points.
func roundedRectanglePolyline(e Element) Polyline {
	r := math.Min(e.CornerRadius, math.Min(e.Width/2, e.Height/2))
	if r <= 0 {
		return rectanglePolyline(e)
	}
	b := e.Bounds()
	centers := []Point{
		{b.MaxX() - r, b.MinY + r}, // top right
		{b.MaxX() - r, b.MaxY() - r},
		{b.MinX + r, b.MaxY() - r},
		{b.MinX + r, b.MinY + r},
	}
	pl := Polyline{{b.MinX + r, b.MinY}}
	for i, c := range centers {
		start := -math.Pi/2 + float64(i)*math.Pi/2
		for step := 0; step <= cornerArcSteps; step++ {
			theta := start + (math.Pi/2)*float64(step)/cornerArcSteps
			pl = append(pl, Point{c.X + r*math.Cos(theta), c.Y + r*math.Sin(theta)})
		}
	}
	// The last arc ends where we started; make that exact.
	pl[len(pl)-1] = pl[0]
	return pl
}

func diamondPolyline(e Element) Polyline {
	m := e.Bounds().EdgeMidpoints()
	return Polyline{m[0], m[1], m[2], m[3], m[0]}
}

func trianglePolyline(e Element) Polyline {
	b := e.Bounds()
	top := Point{b.MinX + b.Width/2, b.MinY}
	return Polyline{
		top,
		{b.MaxX(), b.MaxY()},
		{b.MinX, b.MaxY()},
		top,
	}
}

func hexagonPolyline(e Element) Polyline {
	c := e.Bounds().Center()
	rx, ry := e.Width/2, e.Height/2
	pl := make(Polyline, 0, hexagonSides+1)
	for i := 0; i < hexagonSides; i++ {
		theta := -math.Pi/2 + float64(i)*math.Pi/3
		pl = append(pl, Point{c.X + rx*math.Cos(theta), c.Y + ry*math.Sin(theta)})
	}
	return append(pl, pl[0])
}

func linePolyline(e Element) Polyline {
	pl := make(Polyline, 0, len(e.Waypoints)+2)
	pl = append(pl, e.Start)
	pl = append(pl, e.Waypoints...)
	return append(pl, e.End)
}

func pathPolyline(e Element) Polyline {
	origin := Point{e.X, e.Y}
	pl := make(Polyline, len(e.Points))
	for i, p := range e.Points {
		pl[i] = p.Add(origin)
	}
	return pl
}
