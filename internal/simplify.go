package internal

// Tolerances used when reducing raw pointer samples.
const (
	// Finalizing a freehand stroke.
	StrokeEpsilon = 1.5
	// Coarse reduction used to look for corners.
	CornerEpsilon = 8.0
)

// Ramer-Douglas-Peucker reduction. Every dropped point lies within epsilon of
// the chord that replaced it, and the endpoints are always kept.
//
// Spans are tracked as index pairs on an explicit stack rather than by
// recursing on sub-slices, so long and noisy strokes can't exhaust the stack
// and nothing is copied until the final pass.
func Simplify(points Polyline, epsilon float64) Polyline {
	if len(points) <= 2 {
		return append(Polyline(nil), points...)
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	count := 2

	stack := []int{0, len(points) - 1}
	for len(stack) > 0 {
		start := stack[len(stack)-2]
		end := stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		index, distance := farthestFromChord(points, start, end)
		if index >= 0 && distance > epsilon {
			keep[index] = true
			count++
			stack = append(stack, start, index, index, end)
		}
	}

	result := make(Polyline, 0, count)
	for i, p := range points {
		if keep[i] {
			result = append(result, p)
		}
	}
	return result
}

// The interior point of the span with the largest perpendicular distance from
// the chord between its endpoints. Ties go to the first point found. Returns
// index -1 if the span has no interior.
func farthestFromChord(points Polyline, start, end int) (index int, distance float64) {
	index = -1
	for i := start + 1; i < end; i++ {
		d := PerpendicularDistance(points[i], points[start], points[end])
		if index == -1 || d > distance {
			index = i
			distance = d
		}
	}
	return index, distance
}
