package internal

import "math"

// Endpoints closer than this make a polyline closed.
const ClosedEpsilon = 2.0

func (pl Polyline) Closed() bool {
	return len(pl) >= 2 && Distance(pl[0], pl[len(pl)-1]) < ClosedEpsilon
}

func (pl Polyline) Length() float64 {
	return PathLength(pl)
}

func (pl Polyline) Bounds() BoundingBox {
	return BoundsOf(pl)
}

func (pl Polyline) Segment(i int) Segment {
	return Segment{pl[i], pl[i+1]}
}

// Arc length from the start of the polyline to each vertex. The first entry is
// always 0 and the last is the total length.
func (pl Polyline) CumulativeLengths() []float64 {
	lengths := make([]float64, len(pl))
	for i := 1; i < len(pl); i++ {
		lengths[i] = lengths[i-1] + Distance(pl[i-1], pl[i])
	}
	return lengths
}

// Convert a local parameter on segment i into the global normalized arc-length
// parameter. A zero-length polyline maps everything to 0.
func globalParam(cumulative []float64, i int, localT float64) float64 {
	total := cumulative[len(cumulative)-1]
	if total == 0 {
		return 0
	}
	segmentLength := cumulative[i+1] - cumulative[i]
	t := (cumulative[i] + localT*segmentLength) / total
	return math.Max(0, math.Min(1, t))
}

// The point at normalized arc-length parameter t.
func (pl Polyline) PointAt(t float64) Point {
	if len(pl) < 2 {
		fatalf("cannot evaluate a polyline with %d points", len(pl))
	}
	cumulative := pl.CumulativeLengths()
	return pointAt(pl, cumulative, t)
}

func pointAt(pl Polyline, cumulative []float64, t float64) Point {
	total := cumulative[len(cumulative)-1]
	target := math.Max(0, math.Min(1, t)) * total
	for i := 0; i < len(pl)-1; i++ {
		if cumulative[i+1] < target {
			continue
		}
		segmentLength := cumulative[i+1] - cumulative[i]
		if segmentLength == 0 {
			return pl[i]
		}
		return pl[i].Lerp(pl[i+1], (target-cumulative[i])/segmentLength)
	}
	return pl[len(pl)-1]
}

// Normalized arc-length parameter of the point on the polyline closest to p.
// Every segment is scanned; the first segment reaching the minimum distance
// wins.
func (pl Polyline) ClosestParam(p Point) float64 {
	if len(pl) < 2 {
		fatalf("cannot project onto a polyline with %d points", len(pl))
	}
	cumulative := pl.CumulativeLengths()
	bestDistance := math.Inf(1)
	var bestT float64
	for i := 0; i < len(pl)-1; i++ {
		distance, localT := DistanceToSegment(p, pl[i], pl[i+1])
		if distance < bestDistance {
			bestDistance = distance
			bestT = globalParam(cumulative, i, localT)
		}
	}
	return bestT
}

// The part of the polyline between parameters t0 and t1 (t0 <= t1). The
// result starts and ends at the interpolated points and includes every vertex
// strictly inside the range.
func (pl Polyline) Slice(t0, t1 float64) Polyline {
	if len(pl) < 2 {
		fatalf("cannot slice a polyline with %d points", len(pl))
	}
	if t0 > t1 {
		fatalf("invalid slice range [%v, %v]", t0, t1)
	}
	cumulative := pl.CumulativeLengths()
	total := cumulative[len(cumulative)-1]

	result := Polyline{pointAt(pl, cumulative, t0)}
	for i := 1; i < len(pl)-1; i++ {
		var t float64
		if total > 0 {
			t = cumulative[i] / total
		}
		if t > t0 && t < t1 {
			result = append(result, pl[i])
		}
	}
	return append(result, pointAt(pl, cumulative, t1))
}

// Insert evenly spaced points along every segment so that no gap is wider
// than spacing. Original vertices are always kept, so corners stay exact.
func (pl Polyline) Resample(spacing float64) Polyline {
	if len(pl) < 2 || spacing <= 0 {
		return append(Polyline(nil), pl...)
	}
	result := Polyline{pl[0]}
	for i := 0; i < len(pl)-1; i++ {
		a, b := pl[i], pl[i+1]
		steps := int(math.Ceil(Distance(a, b) / spacing))
		for s := 1; s < steps; s++ {
			result = append(result, a.Lerp(b, float64(s)/float64(steps)))
		}
		result = append(result, b)
	}
	return result
}
