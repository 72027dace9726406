package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels.
const drawPadding = 20

// One colour's worth of things to draw: polylines stroked, markers as dots.
type Layer struct {
	Polylines []Polyline
	Markers   []Point
	R, G, B   float64
	LineWidth float64
}

// Draw the layers, in order, onto a black canvas just big enough for all of
// them. Canvas coordinates match the scene's: y grows downwards.
func Render(layers []Layer, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, layer := range layers {
		for _, pl := range layer.Polylines {
			for _, p := range pl {
				minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
				maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
			}
		}
		for _, p := range layer.Markers {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) { // nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding, scale, then translate to min
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, layer := range layers {
		c.SetRGB(layer.R, layer.G, layer.B)
		lineWidth := layer.LineWidth
		if lineWidth <= 0 {
			lineWidth = 2
		}
		c.SetLineWidth(lineWidth / scale)
		for _, pl := range layer.Polylines {
			if len(pl) < 2 {
				continue
			}
			c.MoveTo(pl[0].X, pl[0].Y)
			for _, p := range pl[1:] {
				c.LineTo(p.X, p.Y)
			}
			c.Stroke()
		}
		for _, p := range layer.Markers {
			c.DrawCircle(p.X, p.Y, 2*lineWidth/scale)
			c.Fill()
		}
	}
	return c
}

func RenderPNG(w io.Writer, layers []Layer, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("invalid scale %v", scale)
	}
	return errors.Wrap(Render(layers, scale).EncodePNG(w), "encoding png")
}
