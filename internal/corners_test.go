package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cornerPoints(corners []Corner) []Point {
	points := make([]Point, len(corners))
	for i, c := range corners {
		points[i] = c.Point
	}
	return points
}

func TestDetectCorners_TooFewSamples(t *testing.T) {
	assert.Nil(t, DetectCorners(Polyline{{0, 0}, {100, 0}, {100, 100}, {0, 100}}))
}

func TestDetectCorners_Straight(t *testing.T) {
	assert.Empty(t, DetectCorners(straightStroke(200, 5)))
}

func TestDetectCorners_Circle(t *testing.T) {
	assert.Empty(t, DetectCorners(ellipseStroke(100, 100, 50, 50, 120)))
}

func TestDetectCorners_Rectangle(t *testing.T) {
	stroke := strokeAround(rectanglePolyline(Element{Width: 200, Height: 100}), 5)
	corners := DetectCorners(stroke)
	// In path order, starting from the top edge.
	assert.Equal(t, []Point{{200, 0}, {200, 100}, {0, 100}, {0, 0}}, cornerPoints(corners))
	for _, c := range corners {
		assert.InDelta(t, math.Pi/2, c.Angle, Tolerance)
	}
}

func TestDetectCorners_ClosedAtCorner(t *testing.T) {
	stroke := rectanglePolyline(Element{Width: 200, Height: 100}).Resample(5)
	corners := DetectCorners(stroke)
	// The corner where the ends meet comes first.
	assert.Equal(t, []Point{{0, 0}, {200, 0}, {200, 100}, {0, 100}}, cornerPoints(corners))
	for _, c := range corners {
		assert.InDelta(t, math.Pi/2, c.Angle, Tolerance)
	}

	t.Run("open ends are not corners", func(t *testing.T) {
		stroke := Polyline{{0, 0}, {200, 0}, {200, 100}, {0, 100}}.Resample(5)
		corners := DetectCorners(stroke)
		assert.Equal(t, []Point{{200, 0}, {200, 100}}, cornerPoints(corners))
	})
}

func TestDetectCorners_WideTurnsAreNotCorners(t *testing.T) {
	// Turning by 60 degrees leaves a 120 degree angle, which is too open.
	var stroke Polyline
	stroke = append(stroke, Polyline{{0, 0}, {100, 0}}.Resample(5)...)
	turned := Point{100 + 100*math.Cos(math.Pi/3), 100 * math.Sin(math.Pi/3)}
	stroke = append(stroke, Polyline{{100, 0}, turned}.Resample(5)[1:]...)
	assert.Empty(t, DetectCorners(stroke))

	// Turning by 120 degrees leaves 60, which is a corner.
	stroke = Polyline{{0, 0}, {100, 0}}.Resample(5)
	turned = Point{100 - 100*math.Cos(math.Pi/3), 100 * math.Sin(math.Pi/3)}
	stroke = append(stroke, Polyline{{100, 0}, turned}.Resample(5)[1:]...)
	corners := DetectCorners(stroke)
	require.Len(t, corners, 1)
	assert.Equal(t, Point{100, 0}, corners[0].Point)
	assert.InDelta(t, math.Pi/3, corners[0].Angle, Tolerance)
}

func TestDetectCorners_IgnoresJitter(t *testing.T) {
	// Small zigzags along an edge are well inside the coarse tolerance.
	var stroke Polyline
	for i := 0; i <= 40; i++ {
		stroke = append(stroke, Point{float64(i) * 5, float64(i%2) * 3})
	}
	assert.Empty(t, DetectCorners(stroke))
}
