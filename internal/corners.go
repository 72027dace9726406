package internal

import "math"

// Turning angles below this count as corners. Smaller angle, sharper turn.
const CornerAngleThreshold = 0.55 * math.Pi

// Strokes with fewer samples than this don't have enough shape to find
// corners in.
const minCornerSamples = 5

// Find the sharp vertices of a stroke. The stroke is first reduced coarsely,
// so that sampling jitter disappears and only the deliberate turns remain,
// then every interior vertex of the reduced path is tested. On a closed path
// the vertex where the ends meet is tested too, and comes first. Corners come
// back in path order.
func DetectCorners(points Polyline) []Corner {
	if len(points) < minCornerSamples {
		return nil
	}
	simplified := Simplify(points, CornerEpsilon)
	if len(simplified) < 3 {
		return nil
	}

	var corners []Corner
	n := len(simplified)
	// Needs three distinct vertices to enclose anything.
	if n >= 4 && simplified.Closed() {
		angle := AngleBetween(simplified[n-2], simplified[0], simplified[1])
		if angle < CornerAngleThreshold {
			corners = append(corners, Corner{Point: simplified[0], Angle: angle})
		}
	}
	for i := 1; i < n-1; i++ {
		angle := AngleBetween(simplified[i-1], simplified[i], simplified[i+1])
		if angle < CornerAngleThreshold {
			corners = append(corners, Corner{Point: simplified[i], Angle: angle})
		}
	}
	return corners
}
