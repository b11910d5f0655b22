package svgpath

import (
	"fmt"
	"math"
)

// Vec2 is a displacement, such as the radii of an ellipse or the offset
// between two points.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// AngleTo returns the signed angle in radians that rotates the unit vector v
// onto the unit vector o. The sign follows the cross product, the magnitude is
// the arccosine of the dot product, clamped to [-1, 1] so that rounding never
// produces NaN.
//
// Both vectors must already be normalized.
func (v Vec2) AngleTo(o Vec2) float64 {
	sign := 1.0
	if v.Cross(o) < 0 {
		sign = -1.0
	}
	dot := min(max(v.Dot(o), -1), 1)
	return sign * math.Acos(dot)
}

// VecFromAngle returns the unit vector at angle th, in radians. Zero is the
// positive x axis, π/2 the positive y axis.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}
