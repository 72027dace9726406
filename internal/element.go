package internal

import "fmt"

type ElementKind string

const (
	KindRectangle        ElementKind = "rectangle"
	KindRoundedRectangle ElementKind = "rounded-rectangle"
	KindEllipse          ElementKind = "ellipse"
	KindDiamond          ElementKind = "diamond"
	KindTriangle         ElementKind = "triangle"
	KindHexagon          ElementKind = "hexagon"
	KindLine             ElementKind = "line"
	KindArrow            ElementKind = "arrow"
	KindPath             ElementKind = "path"
)

type Style struct {
	StrokeColor string
	StrokeWidth float64
}

// Read-only description of an element owned by the caller's element store.
//
// Box shaped kinds use X, Y, Width and Height. Lines use Start, End and the
// optional Waypoints between them, all in world coordinates. Paths store
// Points relative to (X, Y).
type Element struct {
	ID           ElementID
	Kind         ElementKind
	X, Y         float64
	Width        float64
	Height       float64
	CornerRadius float64
	Start, End   Point
	Waypoints    []Point
	Points       []Point
	Style        Style
	Hidden       bool
}

func (e Element) Bounds() BoundingBox {
	return BoundingBox{MinX: e.X, MinY: e.Y, Width: e.Width, Height: e.Height}
}

func (e Element) String() string {
	return fmt.Sprintf("%s %q", e.Kind, e.ID)
}

// Build a path element from world-space points. The element's box is the
// points' bounding box and the stored points are relative to its corner.
func NewPathElement(id ElementID, points Polyline, style Style) Element {
	bounds := points.Bounds()
	relative := make([]Point, len(points))
	origin := Point{bounds.MinX, bounds.MinY}
	for i, p := range points {
		relative[i] = p.Sub(origin)
	}
	return Element{
		ID:     id,
		Kind:   KindPath,
		X:      bounds.MinX,
		Y:      bounds.MinY,
		Width:  bounds.Width,
		Height: bounds.Height,
		Points: relative,
		Style:  style,
	}
}

// The element the drawing surface would create for a recognized shape.
func (m ShapeMatch) Element(id ElementID, style Style) Element {
	switch m.Kind {
	case ShapeLine, ShapeArrow:
		kind := KindLine
		if m.Kind == ShapeArrow {
			kind = KindArrow
		}
		start := Point{m.X1, m.Y1}
		end := Point{m.X2, m.Y2}
		bounds := BoundsOf([]Point{start, end})
		return Element{
			ID: id, Kind: kind,
			X: bounds.MinX, Y: bounds.MinY, Width: bounds.Width, Height: bounds.Height,
			Start: start, End: end,
			Style: style,
		}
	}

	var kind ElementKind
	switch m.Kind {
	case ShapeRectangle:
		kind = KindRectangle
	case ShapeEllipse:
		kind = KindEllipse
	case ShapeTriangle:
		kind = KindTriangle
	case ShapeDiamond:
		kind = KindDiamond
	default:
		fatalf("cannot build an element from a %s match", m.Kind)
	}
	b := m.Bounds
	return Element{
		ID: id, Kind: kind,
		X: b.MinX, Y: b.MinY, Width: b.Width, Height: b.Height,
		Style: style,
	}
}

// An ordered list of elements, back to front.
type Scene []Element

func (s Scene) Find(id ElementID) (Element, bool) {
	for _, e := range s {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// A copy of the scene with the element id replaced, in place, by the given
// elements. If id isn't in the scene, the copy is unchanged.
func (s Scene) Replace(id ElementID, replacements []Element) Scene {
	result := make(Scene, 0, len(s)+len(replacements))
	for _, e := range s {
		if e.ID == id {
			result = append(result, replacements...)
			continue
		}
		result = append(result, e)
	}
	return result
}
