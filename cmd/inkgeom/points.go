package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/inkgeom"
	"github.com/osuushi/inkgeom/advanced"
	"github.com/pkg/errors"
)

// Pointer samples closer than this to the previous kept sample are dropped,
// the way the drawing surface filters them before they reach the engine.
const sampleDeadZone = 2.0

// Read a stroke from newline separated points in the form "x y". Blank lines
// are ignored.
func readStroke(in io.Reader) (inkgeom.Polyline, error) {
	var points inkgeom.Polyline
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return filterSamples(points), nil
}

func parsePoint(line string) (inkgeom.Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return inkgeom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return inkgeom.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return inkgeom.Point{}, errors.Wrap(err, "y")
	}
	return inkgeom.Point{X: x, Y: y}, nil
}

func filterSamples(points inkgeom.Polyline) inkgeom.Polyline {
	if len(points) == 0 {
		return points
	}
	filtered := inkgeom.Polyline{points[0]}
	for _, p := range points[1:] {
		if advanced.Distance(filtered[len(filtered)-1], p) >= sampleDeadZone {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func writeStroke(w io.Writer, points inkgeom.Polyline) {
	for _, p := range points {
		fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
	}
}
