package internal

// Points are plain values. Nothing in the engine holds on to a point or
// mutates one handed in by a caller; every operation builds fresh slices.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

// An ordered list of points joined by straight segments. Order matters: it
// defines the direction of travel and therefore the arc-length parameter.
type Polyline []Point

// Axis aligned bounds, always derived from points on demand.
type BoundingBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// A vertex of a simplified stroke whose turning angle (radians, π meaning
// straight) is sharp enough to count as a corner.
type Corner struct {
	Point
	Angle float64
}

// Opaque id of an element in the caller's element store. The engine only
// compares ids for equality.
type ElementID string

type Intersection struct {
	Point
	// Normalized arc-length positions along the target and the other polyline.
	TSelf  float64
	TOther float64
	Other  ElementID
}

// A polyline that may cut the trim target, tagged with the element it came
// from.
type Cutter struct {
	ID       ElementID
	Polyline Polyline
}

// The polylines that replace a trimmed shape. An empty list means the whole
// shape was trimmed away; a nil *TrimResult means nothing changed.
type TrimResult struct {
	Polylines []Polyline
}
