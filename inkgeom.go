// Stroke geometry for a freehand drawing surface.
//
// This package turns raw pointer samples into compact paths, recognizes
// strokes that approximate a canonical shape (line, arrow, rectangle, ellipse,
// triangle, diamond), and trims existing shapes at their crossings with other
// shapes. Everything here is a pure function of its inputs: nothing is cached
// between calls, so it is safe to call from any number of goroutines.
//
// Operations that find nothing to do (a stroke that matches no shape, a trim
// with nothing to remove) report that as an absent result, never as an error.
// Errors are reserved for broken internal invariants.
package inkgeom

import (
	"github.com/osuushi/inkgeom/internal"
	"github.com/sirupsen/logrus"
)

type Point = internal.Point
type Polyline = internal.Polyline
type BoundingBox = internal.BoundingBox
type Corner = internal.Corner
type ShapeKind = internal.ShapeKind
type ShapeMatch = internal.ShapeMatch
type ElementID = internal.ElementID
type ElementKind = internal.ElementKind
type Element = internal.Element
type Style = internal.Style
type Scene = internal.Scene
type Cutter = internal.Cutter
type Intersection = internal.Intersection
type TrimResult = internal.TrimResult

const (
	ShapeLine      = internal.ShapeLine
	ShapeArrow     = internal.ShapeArrow
	ShapeRectangle = internal.ShapeRectangle
	ShapeEllipse   = internal.ShapeEllipse
	ShapeTriangle  = internal.ShapeTriangle
	ShapeDiamond   = internal.ShapeDiamond
)

const (
	KindRectangle        = internal.KindRectangle
	KindRoundedRectangle = internal.KindRoundedRectangle
	KindEllipse          = internal.KindEllipse
	KindDiamond          = internal.KindDiamond
	KindTriangle         = internal.KindTriangle
	KindHexagon          = internal.KindHexagon
	KindLine             = internal.KindLine
	KindArrow            = internal.KindArrow
	KindPath             = internal.KindPath
)

// Default tolerances for Simplify.
const (
	StrokeEpsilon = internal.StrokeEpsilon
	CornerEpsilon = internal.CornerEpsilon
)

// Send the engine's debug output to l. By default nothing is logged; pass nil
// to go back to that.
func SetLogger(l logrus.FieldLogger) {
	internal.SetLogger(l)
}

// Reduce a stroke with Ramer-Douglas-Peucker. Every dropped point is within
// epsilon of the result, and the endpoints are kept.
func Simplify(points Polyline, epsilon float64) Polyline {
	return internal.Simplify(points, epsilon)
}

// The path to show while a stroke is still being drawn. It is recomputed from
// scratch for every frame.
func PreviewStroke(points Polyline) Polyline {
	return internal.Simplify(points, internal.StrokeEpsilon)
}

// A finished stroke: the simplified path, and the recognized shape if
// recognition is on and one matched.
type Stroke struct {
	Points Polyline
	Shape  *ShapeMatch
}

// Finish a stroke when the pointer is released.
func FinalizeStroke(points Polyline, cfg Config) (stroke Stroke, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			stroke = Stroke{}
			err = recoveredErr
		}
	}()
	stroke.Points = internal.Simplify(points, internal.StrokeEpsilon)
	if cfg.RecognizeShapes {
		if match, ok := internal.Classify(points); ok {
			stroke.Shape = &match
		}
	}
	return stroke, nil
}

// Recognize the shape a raw stroke approximates, if any.
func Classify(points Polyline) (ShapeMatch, bool) {
	return internal.Classify(points)
}

// The outline of an element as a polyline.
func ToPolyline(e Element) (Polyline, bool) {
	return internal.ToPolyline(e)
}

// Cut the span of target that contains click, where spans are bounded by
// the target's crossings with the cutters. A nil result with a nil error means
// nothing should change.
func Trim(target Polyline, click Point, cutters []Cutter) (result *TrimResult, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Trim(target, click, cutters), nil
}

// Trim the element targetID of scene at click, against every other visible
// element. On success, the returned path elements replace the target (see
// Scene.Replace); their ids come from newID and they keep the target's style.
// ok is false if the scene should stay as it is.
func TrimElement(scene Scene, targetID ElementID, click Point, newID func() ElementID) (replacements []Element, ok bool, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			replacements, ok = nil, false
			err = recoveredErr
		}
	}()
	replacements, ok = internal.TrimElement(scene, targetID, click, newID)
	return replacements, ok, nil
}
