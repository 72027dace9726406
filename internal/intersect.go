package internal

import (
	"fmt"
	"math"

	"github.com/osuushi/inkgeom/dbg"
)

// Segments whose direction determinant is smaller than this are parallel.
const parallelEpsilon = 1e-10

// Solve p1 + t*(p2-p1) = p3 + u*(p4-p3). Returns the local parameters on each
// segment, and false if the segments are parallel or don't meet within both.
func (s Segment) Intersect(other Segment) (t, u float64, ok bool) {
	d1 := s.End.Sub(s.Start)
	d2 := other.End.Sub(other.Start)
	det := d1.Cross(d2)
	if math.Abs(det) < parallelEpsilon {
		return 0, 0, false
	}
	offset := other.Start.Sub(s.Start)
	t = offset.Cross(d2) / det
	u = offset.Cross(d1) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// Every crossing between two polylines, with positions given as normalized
// arc-length parameters along each whole polyline so that crossings from
// different segments can be compared. Results come in segment order of a,
// then of b.
func FindIntersections(a, b Polyline, otherID ElementID) []Intersection {
	if len(a) < 2 || len(b) < 2 {
		return nil
	}
	cumulativeA := a.CumulativeLengths()
	cumulativeB := b.CumulativeLengths()

	var result []Intersection
	for i := 0; i < len(a)-1; i++ {
		segA := a.Segment(i)
		for j := 0; j < len(b)-1; j++ {
			t, u, ok := segA.Intersect(b.Segment(j))
			if !ok {
				continue
			}
			result = append(result, Intersection{
				Point:  segA.Start.Lerp(segA.End, t),
				TSelf:  globalParam(cumulativeA, i, t),
				TOther: globalParam(cumulativeB, j, u),
				Other:  otherID,
			})
		}
	}
	return result
}

func (x Intersection) String() string {
	return fmt.Sprintf("(%.2f, %.2f) t=%.4f with %s", x.X, x.Y, x.TSelf, dbg.Name(x.Other))
}
