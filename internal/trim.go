package internal

import (
	"sort"

	"github.com/osuushi/inkgeom/dbg"
	"github.com/sirupsen/logrus"
)

const (
	// Intersections closer together than this are one crossing.
	mergeDistance = 3.0
	// Open-curve remnants this close to an end are too short to keep.
	endMargin = 0.01
)

// Remove the piece of target that the click lands on, where pieces are
// bounded by the target's crossings with the cutters. Returns nil when there
// is nothing to remove: too few crossings, a click exactly on a crossing, or
// geometry that doesn't bracket the click.
func Trim(target Polyline, click Point, cutters []Cutter) *TrimResult {
	if len(target) < 2 {
		return trimNoop("target too short", nil)
	}

	var intersections []Intersection
	for _, cutter := range cutters {
		if len(cutter.Polyline) < 2 {
			continue
		}
		intersections = append(intersections, FindIntersections(target, cutter.Polyline, cutter.ID)...)
	}
	if len(intersections) < 2 {
		return trimNoop("too few intersections", logrus.Fields{"intersections": len(intersections)})
	}

	clickT := target.ClosestParam(click)
	merged := mergeIntersections(intersections)

	// These are deliberately plain forward and backward scans: at a tie
	// (click exactly on a crossing) both land on the same crossing, which
	// aborts the trim.
	left := -1
	for i, x := range merged {
		if x.TSelf <= clickT {
			left = i
		}
	}
	right := -1
	for i := len(merged) - 1; i >= 0; i-- {
		if merged[i].TSelf >= clickT {
			right = i
		}
	}

	fields := logrus.Fields{"clickT": clickT, "left": left, "right": right, "merged": len(merged)}
	if target.Closed() {
		return trimClosed(target, merged, left, right, fields)
	}
	return trimOpen(target, merged, left, right, fields)
}

// Sort crossings along the target and drop any that sit within
// mergeDistance of the last one kept.
func mergeIntersections(intersections []Intersection) []Intersection {
	sorted := append([]Intersection(nil), intersections...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TSelf < sorted[j].TSelf
	})

	merged := []Intersection{sorted[0]}
	for _, x := range sorted[1:] {
		if Distance(x.Point, merged[len(merged)-1].Point) < mergeDistance {
			continue
		}
		merged = append(merged, x)
	}
	return merged
}

func trimClosed(target Polyline, merged []Intersection, left, right int, fields logrus.Fields) *TrimResult {
	if left == -1 {
		left = len(merged) - 1
	}
	if right == -1 {
		right = 0
	}
	if left == right {
		return trimNoop("click on intersection", fields)
	}
	leftX, rightX := merged[left], merged[right]

	if rightX.TSelf > leftX.TSelf {
		// The removed span is inside the path; keep the rest, stitched back
		// together across the seam.
		tail := pinEnds(target.Slice(rightX.TSelf, 1), &rightX, nil)
		head := pinEnds(target.Slice(0, leftX.TSelf), nil, &leftX)
		kept := append(tail, head[1:]...)
		return trimmed(fields, kept)
	}

	// The removed span wraps across the seam, so what's left is the middle.
	kept := pinEnds(target.Slice(rightX.TSelf, leftX.TSelf), &rightX, &leftX)
	return trimmed(fields, kept)
}

func trimOpen(target Polyline, merged []Intersection, left, right int, fields logrus.Fields) *TrimResult {
	if left != -1 && left == right {
		return trimNoop("click on intersection", fields)
	}

	var pieces []Polyline
	if left != -1 && merged[left].TSelf > endMargin {
		pieces = append(pieces, pinEnds(target.Slice(0, merged[left].TSelf), nil, &merged[left]))
	}
	if right != -1 && merged[right].TSelf < 1-endMargin {
		pieces = append(pieces, pinEnds(target.Slice(merged[right].TSelf, 1), &merged[right], nil))
	}
	return trimmed(fields, pieces...)
}

// Snap the ends of a piece onto the exact crossing points, so they line up
// with the other shape's edge rather than with a re-derived point.
func pinEnds(pl Polyline, start, end *Intersection) Polyline {
	if start != nil {
		pl[0] = start.Point
	}
	if end != nil {
		pl[len(pl)-1] = end.Point
	}
	return pl
}

func trimmed(fields logrus.Fields, pieces ...Polyline) *TrimResult {
	result := &TrimResult{Polylines: []Polyline{}}
	for _, piece := range pieces {
		if len(piece) >= 2 {
			result.Polylines = append(result.Polylines, piece)
		}
	}
	Logger().WithFields(fields).WithField("pieces", len(result.Polylines)).Debug("trimmed")
	return result
}

func trimNoop(reason string, fields logrus.Fields) *TrimResult {
	Logger().WithFields(fields).Debugf("trim is a no-op: %s", reason)
	return nil
}

// Trim an element of a scene at the clicked point. The target and every
// other visible element are converted to polylines, the target is trimmed
// against the others, and each surviving piece becomes a new path element
// with the target's style and an id from newID. Returns false if the scene
// should stay as it is.
func TrimElement(scene Scene, targetID ElementID, click Point, newID func() ElementID) ([]Element, bool) {
	targetElement, ok := scene.Find(targetID)
	if !ok {
		return trimElementNoop(targetID, "target not in scene")
	}
	target, ok := ToPolyline(targetElement)
	if !ok {
		return trimElementNoop(targetID, "target has no outline")
	}

	var cutters []Cutter
	for _, e := range scene {
		if e.ID == targetID || e.Hidden {
			continue
		}
		pl, ok := ToPolyline(e)
		if !ok {
			continue
		}
		cutters = append(cutters, Cutter{ID: e.ID, Polyline: pl})
	}

	result := Trim(target, click, cutters)
	if result == nil {
		return trimElementNoop(targetID, "nothing to trim")
	}
	replacements := make([]Element, 0, len(result.Polylines))
	for _, pl := range result.Polylines {
		replacements = append(replacements, NewPathElement(newID(), pl, targetElement.Style))
	}
	return replacements, true
}

func trimElementNoop(id ElementID, reason string) ([]Element, bool) {
	Logger().WithField("target", dbg.Name(id)).Debugf("element trim skipped: %s", reason)
	return nil, false
}
