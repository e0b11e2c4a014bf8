package vptree

import "math"

// Point is a bare 2-D coordinate. It implements Distance[DataPoint] (but
// deliberately not Distance[Point] — Go does not allow a type to implement
// two generic Distance instantiations whose Distance method would collide),
// so a Point can serve as a heterogeneous query target against a tree of
// DataPoint without ever being stored itself, mirroring the original
// implementation's Point/DataPoint example.
type Point struct {
	X, Y float64
}

func (p Point) Distance(other DataPoint) float64 {
	return euclidean(p.X, p.Y, other.Point.X, other.Point.Y)
}

// Heuristic skips the square root and is monotonic with Distance. Point is
// only ever a query target and search never calls Heuristic, so the tree
// does not call this method; the builder uses DataPoint.Heuristic.
func (p Point) Heuristic(other DataPoint) float64 {
	dx, dy := p.X-other.Point.X, p.Y-other.Point.Y
	return dx*dx + dy*dy
}

// DataPoint pairs a Point with an opaque payload, the way a real caller
// would attach an ID or document to the coordinate actually indexed. It
// implements Distance[DataPoint] and so can be both stored and queried.
type DataPoint struct {
	Point Point
	Data  string
}

func (d DataPoint) Distance(other DataPoint) float64 {
	return euclidean(d.Point.X, d.Point.Y, other.Point.X, other.Point.Y)
}

func (d DataPoint) Heuristic(other DataPoint) float64 {
	dx, dy := d.Point.X-other.Point.X, d.Point.Y-other.Point.Y
	return dx*dx + dy*dy
}

func euclidean(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}
