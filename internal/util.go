package internal

import (
	"math"

	"github.com/paulmach/orb"
)

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Distance from p to the infinite line through a and b. If a and b coincide
// there is no line, so this is just the distance to a.
func PerpendicularDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return Distance(p, a)
	}
	return math.Abs(d.Cross(p.Sub(a))) / length
}

// Distance from p to the segment a-b, along with the projection parameter t,
// clamped into [0, 1], of the closest point on the segment.
func DistanceToSegment(p, a, b Point) (distance, t float64) {
	d := b.Sub(a)
	lengthSq := d.Dot(d)
	if lengthSq > 0 {
		t = p.Sub(a).Dot(d) / lengthSq
		t = math.Max(0, math.Min(1, t))
	}
	return Distance(p, a.Lerp(b, t)), t
}

// The angle at vertex between the vectors towards prev and next. A straight
// run gives π, a hairpin gives 0. If either neighbor sits on top of the vertex
// the angle is undefined, and we call it straight.
func AngleBetween(prev, vertex, next Point) float64 {
	v1 := prev.Sub(vertex)
	v2 := next.Sub(vertex)
	l1 := v1.Length()
	l2 := v2.Length()
	if l1 == 0 || l2 == 0 {
		return math.Pi
	}
	cos := v1.Dot(v2) / (l1 * l2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// Total length of the path through the points, in order.
func PathLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

// Bounds of a set of points. An empty set has an empty box at the origin.
func BoundsOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = orb.Point{p.X, p.Y}
	}
	bound := mp.Bound()
	return BoundingBox{
		MinX:   bound.Min[0],
		MinY:   bound.Min[1],
		Width:  bound.Max[0] - bound.Min[0],
		Height: bound.Max[1] - bound.Min[1],
	}
}

func (b BoundingBox) MaxX() float64 {
	return b.MinX + b.Width
}

func (b BoundingBox) MaxY() float64 {
	return b.MinY + b.Height
}

func (b BoundingBox) Center() Point {
	return Point{b.MinX + b.Width/2, b.MinY + b.Height/2}
}

func (b BoundingBox) Diagonal() float64 {
	return math.Hypot(b.Width, b.Height)
}

// Midpoints of the top, right, bottom and left edges, in that order.
func (b BoundingBox) EdgeMidpoints() [4]Point {
	c := b.Center()
	return [4]Point{
		{c.X, b.MinY},
		{b.MaxX(), c.Y},
		{c.X, b.MaxY()},
		{b.MinX, c.Y},
	}
}
