package geom

import (
	"fmt"
	"math"
)

// DirectionScale is the fixed-point scale applied to sweep directions.
//
// Directions are truncated toward zero at this scale so that projections of
// integral points are exact and equal projections only ever differ by the
// index tie-break.
const DirectionScale = 65536

// Point is a disk center in the plane.
//
// Coordinates are float64. Integral input is represented exactly as long as
// it stays below 2^53 in magnitude.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Dist2 returns the squared Euclidean distance between p and q, rounded
// to float64. Use Within to compare it against a threshold.
func (p Point) Dist2(q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// String implements fmt.Stringer using the "(x,y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Direction returns the quantized sweep direction for angle (radians).
func Direction(angle float64) Point {
	return Point{
		X: math.Trunc(DirectionScale * math.Cos(angle)),
		Y: math.Trunc(DirectionScale * math.Sin(angle)),
	}
}

// Bounds returns the axis aligned bounding box of pts.
// ok is false if pts is empty.
func Bounds(pts []Point) (lo, hi Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, true
}
