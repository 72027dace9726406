package inkgeom

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size, step float64) Polyline {
	// Starts mid-way along the top edge.
	corners := []Point{{X: size, Y: 0}, {X: size, Y: size}, {X: 0, Y: size}, {X: 0, Y: 0}, {X: size / 2, Y: 0}}
	pl := Polyline{{X: size / 2, Y: 0}}
	for _, c := range corners {
		prev := pl[len(pl)-1]
		n := int(math.Ceil(math.Hypot(c.X-prev.X, c.Y-prev.Y) / step))
		for i := 1; i <= n; i++ {
			f := float64(i) / float64(n)
			pl = append(pl, Point{X: prev.X + (c.X-prev.X)*f, Y: prev.Y + (c.Y-prev.Y)*f})
		}
	}
	return pl
}

func TestFinalizeStroke(t *testing.T) {
	raw := square(100, 4)

	stroke, err := FinalizeStroke(raw, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Polyline{{X: 50, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0}, {X: 50, Y: 0}}, stroke.Points)
	require.NotNil(t, stroke.Shape)
	assert.Equal(t, ShapeRectangle, stroke.Shape.Kind)
	assert.Equal(t, BoundingBox{MinX: 0, MinY: 0, Width: 100, Height: 100}, stroke.Shape.Bounds)

	t.Run("drawn from a corner", func(t *testing.T) {
		raw := Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0}}.Resample(4)
		stroke, err := FinalizeStroke(raw, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0}}, stroke.Points)
		require.NotNil(t, stroke.Shape)
		assert.Equal(t, ShapeRectangle, stroke.Shape.Kind)
		assert.Equal(t, BoundingBox{MinX: 0, MinY: 0, Width: 100, Height: 100}, stroke.Shape.Bounds)
	})

	t.Run("recognition off", func(t *testing.T) {
		stroke, err := FinalizeStroke(raw, Config{})
		require.NoError(t, err)
		assert.Nil(t, stroke.Shape)
		assert.Len(t, stroke.Points, 6)
	})

	t.Run("no match", func(t *testing.T) {
		scribble := Polyline{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 6, Y: 0}}
		stroke, err := FinalizeStroke(scribble, DefaultConfig())
		require.NoError(t, err)
		assert.Nil(t, stroke.Shape)
		assert.Equal(t, scribble, stroke.Points)
	})
}

func TestPreviewStroke(t *testing.T) {
	assert.Equal(t, Simplify(square(60, 3), StrokeEpsilon), PreviewStroke(square(60, 3)))
}

func TestTrim(t *testing.T) {
	target := Polyline{{X: 0, Y: 50}, {X: 200, Y: 50}}
	cutters := []Cutter{
		{ID: "a", Polyline: Polyline{{X: 50, Y: 0}, {X: 50, Y: 100}}},
		{ID: "b", Polyline: Polyline{{X: 150, Y: 0}, {X: 150, Y: 100}}},
	}

	result, err := Trim(target, Point{X: 100, Y: 50}, cutters)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Polylines, 2)

	result, err = Trim(target, Point{X: 100, Y: 50}, cutters[:1])
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTrimElement(t *testing.T) {
	scene := Scene{
		{ID: "box", Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100, Style: Style{StrokeColor: "green", StrokeWidth: 2}},
		{ID: "slash", Kind: KindLine, Start: Point{X: -20, Y: 30}, End: Point{X: 120, Y: 30}},
	}
	n := 0
	newID := func() ElementID {
		n++
		return ElementID("piece")
	}

	// Clicking the top strip of the box removes it, leaving a U shape.
	replacements, ok, err := TrimElement(scene, "box", Point{X: 50, Y: 0}, newID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, replacements, 1)
	assert.Equal(t, 1, n)
	assert.Equal(t, KindPath, replacements[0].Kind)
	assert.Equal(t, scene[0].Style, replacements[0].Style)

	pl, ok := ToPolyline(replacements[0])
	require.True(t, ok)
	assert.Equal(t, Polyline{{X: 100, Y: 30}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 30}}, pl)

	updated := scene.Replace("box", replacements)
	assert.Equal(t, []ElementID{"piece", "slash"}, []ElementID{updated[0].ID, updated[1].ID})
}

func TestConfig(t *testing.T) {
	assert.True(t, DefaultConfig().RecognizeShapes)

	dir := t.TempDir()
	path := filepath.Join(dir, "inkgeom.toml")
	require.NoError(t, os.WriteFile(path, []byte("recognize_shapes = false\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.RecognizeShapes)

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err = LoadConfig(empty)
	require.NoError(t, err)
	assert.True(t, cfg.RecognizeShapes, "missing keys keep their defaults")

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("recognize_shapes = maybe\n"), 0o644))
	_, err = LoadConfig(broken)
	assert.Error(t, err)
}
