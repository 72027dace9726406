package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A wobbly freehand stroke: a long wave with some higher frequency jitter on
// top. Every sample is distinct.
func wobblyStroke() Polyline {
	var pl Polyline
	for i := 0; i < 300; i++ {
		x := float64(i)
		y := 40*math.Sin(x/25) + 2*math.Sin(x*1.7) + 0.5*math.Cos(x*3.1)
		pl = append(pl, Point{x, y})
	}
	return pl
}

func TestSimplify_Short(t *testing.T) {
	assert.Empty(t, Simplify(nil, StrokeEpsilon))

	input := Polyline{{0, 0}, {5, 5}}
	result := Simplify(input, StrokeEpsilon)
	assert.Equal(t, input, result)
	result[0] = Point{9, 9}
	assert.Equal(t, Point{0, 0}, input[0], "result must not alias the input")
}

func TestSimplify_Collinear(t *testing.T) {
	assert.Equal(t, Polyline{{0, 0}, {200, 0}}, Simplify(straightStroke(200, 5), 0))
}

func TestSimplify_NegativeEpsilonKeepsEverything(t *testing.T) {
	input := straightStroke(20, 5)
	assert.Equal(t, input, Simplify(input, -1))
}

func TestSimplify_KeepsSharpVertex(t *testing.T) {
	input := Polyline{{0, 0}, {5, 0.5}, {10, 0}, {10, 10}, {10.4, 15}, {10, 20}}
	assert.Equal(t, Polyline{{0, 0}, {10, 0}, {10, 20}}, Simplify(input, 1))
}

func TestSimplify_TiesGoToFirstPoint(t *testing.T) {
	input := Polyline{{0, 0}, {1, 5}, {2, 5}, {3, 0}}
	assert.Equal(t, Polyline{{0, 0}, {1, 5}, {3, 0}}, Simplify(input, 1))
}

func TestSimplify_Wobbly(t *testing.T) {
	input := wobblyStroke()
	for _, epsilon := range []float64{StrokeEpsilon, CornerEpsilon} {
		result := Simplify(input, epsilon)
		require.GreaterOrEqual(t, len(result), 2)
		assert.Less(t, len(result), len(input))
		assert.Equal(t, input[0], result[0])
		assert.Equal(t, input[len(input)-1], result[len(result)-1])

		// Every dropped sample is within epsilon of the chord that replaced
		// it. The result is a subsequence of the input, so walk both.
		j := 0
		for i, p := range input {
			if p == result[j] {
				j++
				continue
			}
			require.Greater(t, j, 0, "sample %d precedes the first kept point", i)
			distance := PerpendicularDistance(p, result[j-1], result[j])
			assert.LessOrEqual(t, distance, epsilon, "sample %d", i)
		}
		assert.Equal(t, len(result), j, "result is not a subsequence of the input")
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	once := Simplify(wobblyStroke(), StrokeEpsilon)
	assert.Equal(t, once, Simplify(once, StrokeEpsilon))
}

func TestSimplify_MonotonicInEpsilon(t *testing.T) {
	input := wobblyStroke()
	previous := len(input) + 1
	for _, epsilon := range []float64{0, 0.5, 1, StrokeEpsilon, 4, CornerEpsilon, 20, 100} {
		n := len(Simplify(input, epsilon))
		assert.LessOrEqual(t, n, previous, "epsilon %v", epsilon)
		previous = n
	}
}
