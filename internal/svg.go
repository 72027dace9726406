package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads a scene out of an SVG document. It is not a general SVG reader:
// it understands the basic shapes, straight-line paths, and a data-shape
// attribute on <rect> naming one of the box kinds the drawing surface has
// (diamond, triangle, hexagon, ellipse). Transforms, curves and styling beyond
// stroke and stroke-width are ignored. Elements come back in document order.

func ParseSVG(r io.Reader) (Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	var scene Scene
	if err := collectElements(root, &scene); err != nil {
		return nil, err
	}
	return scene, nil
}

func collectElements(el *svgparser.Element, scene *Scene) error {
	e, ok, err := elementFromSVG(el, len(*scene))
	if err != nil {
		return errors.Wrapf(err, "<%s id=%q>", el.Name, el.Attributes["id"])
	}
	if ok {
		*scene = append(*scene, e)
	}
	for _, child := range el.Children {
		if err := collectElements(child, scene); err != nil {
			return err
		}
	}
	return nil
}

func elementFromSVG(el *svgparser.Element, index int) (Element, bool, error) {
	a := attributes(el.Attributes)
	var e Element
	switch el.Name {
	case "rect":
		e = Element{Kind: KindRectangle}
		e.X, e.Y, e.Width, e.Height = a.float("x"), a.float("y"), a.float("width"), a.float("height")
		if rx := a.float("rx"); rx > 0 {
			e.Kind = KindRoundedRectangle
			e.CornerRadius = rx
		}
		if shape := el.Attributes["data-shape"]; shape != "" {
			e.Kind = ElementKind(shape)
		}
	case "ellipse", "circle":
		rx, ry := a.float("rx"), a.float("ry")
		if el.Name == "circle" {
			rx, ry = a.float("r"), a.float("r")
		}
		cx, cy := a.float("cx"), a.float("cy")
		e = Element{Kind: KindEllipse, X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}
	case "line":
		start := Point{a.float("x1"), a.float("y1")}
		end := Point{a.float("x2"), a.float("y2")}
		e = lineElement(start, end, nil)
	case "polyline":
		points, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return Element{}, false, err
		}
		if len(points) < 2 {
			return Element{}, false, errors.Errorf("polyline needs at least 2 points, got %d", len(points))
		}
		e = lineElement(points[0], points[len(points)-1], points[1:len(points)-1])
	case "polygon":
		points, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return Element{}, false, err
		}
		if len(points) > 0 {
			points = append(points, points[0])
		}
		e = NewPathElement("", points, Style{})
	case "path":
		points, err := parsePathData(el.Attributes["d"])
		if err != nil {
			return Element{}, false, err
		}
		e = NewPathElement("", points, Style{})
	default:
		return Element{}, false, nil
	}
	if a.err != nil {
		return Element{}, false, a.err
	}

	e.ID = ElementID(el.Attributes["id"])
	if e.ID == "" {
		e.ID = ElementID(fmt.Sprintf("%s-%d", el.Name, index+1))
	}
	e.Style = Style{StrokeColor: el.Attributes["stroke"], StrokeWidth: 1}
	if _, ok := el.Attributes["stroke-width"]; ok {
		e.Style.StrokeWidth = a.float("stroke-width")
	}
	e.Hidden = el.Attributes["visibility"] == "hidden" || el.Attributes["display"] == "none"
	return e, true, a.err
}

func lineElement(start, end Point, waypoints []Point) Element {
	all := append(append([]Point{start}, waypoints...), end)
	b := BoundsOf(all)
	return Element{
		Kind: KindLine,
		X:    b.MinX, Y: b.MinY, Width: b.Width, Height: b.Height,
		Start: start, End: end,
		Waypoints: append([]Point(nil), waypoints...),
	}
}

// Numeric attribute reader that remembers the first parse failure, so
// callers can read a batch of attributes and check once.
type attributeReader struct {
	values map[string]string
	err    error
}

func attributes(values map[string]string) *attributeReader {
	return &attributeReader{values: values}
}

func (a *attributeReader) float(name string) float64 {
	raw, ok := a.values[name]
	if !ok || a.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "px"), 64)
	if err != nil {
		a.err = errors.Wrapf(err, "attribute %s", name)
		return 0
	}
	return v
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	numbers := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}

func parsePointList(s string) ([]Point, error) {
	numbers, err := parseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(numbers)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(numbers)/2)
	for i := 0; i < len(numbers); i += 2 {
		points = append(points, Point{numbers[i], numbers[i+1]})
	}
	return points, nil
}

// Straight-line path data only: M, L, H, V and Z, absolute or relative. Only
// the first subpath is read.
func parsePathData(d string) ([]Point, error) {
	var points []Point
	var current, start Point
	command := byte(0)
	tokens := tokenizePath(d)

	next := func() (float64, error) {
		if len(tokens) == 0 {
			return 0, errors.Errorf("path data %q ends early", d)
		}
		v, err := strconv.ParseFloat(tokens[0], 64)
		tokens = tokens[1:]
		return v, errors.Wrapf(err, "path data %q", d)
	}

	for len(tokens) > 0 {
		if c := tokens[0][0]; isPathCommand(c) {
			command = c
			tokens = tokens[1:]
			if command == 'Z' || command == 'z' {
				if len(points) > 0 {
					points = append(points, start)
				}
				break
			}
			if (command == 'M' || command == 'm') && len(points) > 0 {
				break
			}
			continue
		}

		relative := command >= 'a' && command <= 'z'
		base := Point{}
		if relative {
			base = current
		}
		switch command {
		case 'M', 'm', 'L', 'l':
			x, err := next()
			if err != nil {
				return nil, err
			}
			y, err := next()
			if err != nil {
				return nil, err
			}
			current = Point{base.X + x, base.Y + y}
			if command == 'M' || command == 'm' {
				start = current
				// Further pairs after a moveto are implicit linetos.
				command = 'L'
				if relative {
					command = 'l'
				}
			}
		case 'H', 'h':
			x, err := next()
			if err != nil {
				return nil, err
			}
			current = Point{base.X + x, current.Y}
		case 'V', 'v':
			y, err := next()
			if err != nil {
				return nil, err
			}
			current = Point{current.X, base.Y + y}
		default:
			return nil, errors.Errorf("unsupported path data %q", d)
		}
		points = append(points, current)
	}
	return points, nil
}

func isPathCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvZz", c) >= 0
}

// Split path data into command letters and numbers.
func tokenizePath(d string) []string {
	var tokens []string
	var number strings.Builder
	flush := func() {
		if number.Len() > 0 {
			tokens = append(tokens, number.String())
			number.Reset()
		}
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case unicode.IsLetter(rune(c)) && c != 'e' && c != 'E':
			flush()
			tokens = append(tokens, string(c))
		case c == ',' || unicode.IsSpace(rune(c)):
			flush()
		case c == '-' && number.Len() > 0 && !strings.HasSuffix(number.String(), "e"):
			flush()
			number.WriteByte(c)
		default:
			number.WriteByte(c)
		}
	}
	flush()
	return tokens
}
