// Lower-level access to the stroke geometry engine: the primitives and
// intermediate steps that the inkgeom package composes, plus scene import and
// debug rendering.
package advanced

import (
	"io"

	"github.com/osuushi/inkgeom/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type Polyline = internal.Polyline
type BoundingBox = internal.BoundingBox
type Corner = internal.Corner
type Intersection = internal.Intersection
type ElementID = internal.ElementID
type Element = internal.Element
type Style = internal.Style
type Scene = internal.Scene
type Layer = internal.Layer

const (
	ClosedEpsilon        = internal.ClosedEpsilon
	CornerAngleThreshold = internal.CornerAngleThreshold
)

func Distance(a, b Point) float64 {
	return internal.Distance(a, b)
}

func PerpendicularDistance(p, a, b Point) float64 {
	return internal.PerpendicularDistance(p, a, b)
}

func DistanceToSegment(p, a, b Point) (distance, t float64) {
	return internal.DistanceToSegment(p, a, b)
}

func AngleBetween(prev, vertex, next Point) float64 {
	return internal.AngleBetween(prev, vertex, next)
}

func PathLength(points []Point) float64 {
	return internal.PathLength(points)
}

func BoundsOf(points []Point) BoundingBox {
	return internal.BoundsOf(points)
}

func EllipsePerimeter(rx, ry float64) float64 {
	return internal.EllipsePerimeter(rx, ry)
}

// The sharp vertices of a stroke, in path order.
func DetectCorners(points Polyline) []Corner {
	return internal.DetectCorners(points)
}

// Every crossing of a with b. Positions are normalized arc-length parameters
// along each polyline, and every result is tagged with otherID.
func FindIntersections(a, b Polyline, otherID ElementID) []Intersection {
	return internal.FindIntersections(a, b, otherID)
}

// The piece of pl between arc-length parameters t0 <= t1.
func Slice(pl Polyline, t0, t1 float64) (result Polyline, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return pl.Slice(t0, t1), nil
}

func NewPathElement(id ElementID, points Polyline, style Style) Element {
	return internal.NewPathElement(id, points, style)
}

// Read a scene from an SVG document.
func ParseSVG(r io.Reader) (Scene, error) {
	return internal.ParseSVG(r)
}

// Draw layers of polylines and markers as a PNG, for debugging.
func RenderPNG(w io.Writer, layers []Layer, scale float64) error {
	return internal.RenderPNG(w, layers, scale)
}
