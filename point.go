package svgpath

import (
	"fmt"
	"math"
)

// Point is a position in the path's user coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by the offset o. Relative coordinates are resolved this
// way against the current point.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the offset from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// ReflectAbout mirrors pt through center, returning 2·center − pt.
//
// This is how smooth curve commands derive their implicit control point from
// the previous segment's final control point.
func (pt Point) ReflectAbout(center Point) Point {
	return Point{
		X: 2*center.X - pt.X,
		Y: 2*center.Y - pt.Y,
	}
}

// Midpoint returns the point halfway between pt and o.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// IsFinite reports whether neither coordinate is infinite or NaN.
func (pt Point) IsFinite() bool {
	return !math.IsInf(pt.X, 0) && !math.IsInf(pt.Y, 0) &&
		!math.IsNaN(pt.X) && !math.IsNaN(pt.Y)
}
