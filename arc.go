package svgpath

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center Point
	Radii  Vec2
	// StartAngle is the angle of the start point on the unrotated ellipse, in
	// radians.
	StartAngle float64
	// SweepAngle is the signed angle the arc spans, in radians. Positive
	// angles sweep from positive x towards positive y.
	SweepAngle float64
	// XRotation is the rotation of the ellipse's x axis, in radians.
	XRotation float64
}

// SVGArc is an elliptical arc in endpoint parameterization, as used by the
// ArcTo path command.
type SVGArc struct {
	From  Point
	To    Point
	Radii Vec2
	// XRotation is the rotation of the ellipse's x axis, in radians.
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// Center converts a to center parameterization, following the conversion in
// the SVG implementation notes (appendix B.2.4 of SVG 1.1).
//
// The signs of the radii are ignored. Radii that are too small to connect the
// end points are scaled up uniformly until they are just large enough.
//
// It returns false if the arc is degenerate: if its end points coincide or
// either radius is zero. Such arcs draw nothing. It also returns false if the
// computation overflows float64.
func (a SVGArc) Center() (Arc, bool) {
	sin, cos := math.Sincos(a.XRotation)

	// The half-difference of the end points, in the ellipse's rotated frame.
	hd := a.From.Sub(a.To).Mul(0.5)
	x1p := cos*hd.X + sin*hd.Y
	y1p := -sin*hd.X + cos*hd.Y
	if x1p == 0 && y1p == 0 {
		return Arc{}, false
	}

	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}

	x1pSq := x1p * x1p
	y1pSq := y1p * y1p
	if lambda := x1pSq/(rx*rx) + y1pSq/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}
	rxSq := rx * rx
	rySq := ry * ry

	// Rounding can push the radicand slightly below zero when the radii were
	// just scaled up.
	radicand := max(rxSq*rySq-rxSq*y1pSq-rySq*x1pSq, 0)
	radicand /= rxSq*y1pSq + rySq*x1pSq
	coef := math.Sqrt(radicand)
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * (rx / ry) * y1p
	cyp := coef * -(ry / rx) * x1p

	mid := a.From.Midpoint(a.To)
	center := Pt(
		cos*cxp-sin*cyp+mid.X,
		sin*cxp+cos*cyp+mid.Y,
	)

	v1 := Vec((x1p-cxp)/rx, (y1p-cyp)/ry)
	v2 := Vec((-x1p-cxp)/rx, (-y1p-cyp)/ry)
	theta1 := Vec(1, 0).AngleTo(v1)
	dtheta := v1.AngleTo(v2)
	if !a.Sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if a.Sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	if !center.IsFinite() || math.IsNaN(dtheta) {
		return Arc{}, false
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: theta1,
		SweepAngle: dtheta,
		XRotation:  a.XRotation,
	}, true
}

// Cubics returns cubic Béziers approximating a, as described by [Arc.Cubics].
// The first curve starts exactly at a.From and the last one ends exactly at
// a.To. Degenerate arcs produce no curves.
func (a SVGArc) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		arc, ok := a.Center()
		if !ok {
			return
		}
		n := arc.numCubics()
		i := 0
		for c := range arc.Cubics() {
			if i == 0 {
				c.P0 = a.From
			}
			i++
			if i == n {
				c.P3 = a.To
			}
			if !yield(c) {
				return
			}
		}
	}
}

// numCubics returns the number of pieces [Arc.Cubics] splits the arc into.
func (a Arc) numCubics() int {
	// Rounding can leave a quarter turn slightly above π/2.
	return max(int(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)-1e-9)), 1)
}

// Cubics returns cubic Béziers approximating a. The arc is split into the
// fewest equal pieces that each span at most 90°, in the direction of the
// sweep.
//
// Each piece is first approximated on the unit circle, with control arms of
// length 4/3·tan(Δ/4) for a piece spanning Δ, and then mapped onto the ellipse
// by scaling, rotating, and translating.
func (a Arc) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		n := a.numCubics()
		step := a.SweepAngle / float64(n)
		armLen := (4.0 / 3.0) * math.Tan(step/4)
		aff := Scale(a.Radii.X, a.Radii.Y).
			ThenRotate(a.XRotation).
			ThenTranslate(Vec2(a.Center))

		angle0 := a.StartAngle
		p0 := VecFromAngle(angle0)
		for range n {
			angle1 := angle0 + step
			p3 := VecFromAngle(angle1)
			c := CubicBez{
				Point(p0),
				Pt(p0.X-p0.Y*armLen, p0.Y+p0.X*armLen),
				Pt(p3.X+p3.Y*armLen, p3.Y-p3.X*armLen),
				Point(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(c.Transform(aff)) {
				break
			}
		}
	}
}

// Eval returns the point on the arc's ellipse at the given angle, which is
// measured on the unrotated ellipse like [Arc.StartAngle].
func (a Arc) Eval(angle float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle))
}

// End returns the point at which the arc ends.
func (a Arc) End() Point {
	return a.Eval(a.StartAngle + a.SweepAngle)
}

// sampleEllipse returns the offset from an ellipse's center to the point at
// angle on it.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt turns pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// ArcToCubics converts the ArcTo command from the current point from to the
// point to into CurveTo segments. xRotation is in degrees, as in path data.
//
// Degenerate arcs, whose end points coincide or that have a zero radius,
// produce no segments. Neither do arcs whose geometry overflows float64.
func ArcToCubics(from, to Point, rx, ry, xRotation float64, largeArc, sweep bool) []Segment {
	a := SVGArc{
		From:      from,
		To:        to,
		Radii:     Vec(rx, ry),
		XRotation: xRotation * math.Pi / 180,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
	var out []Segment
	for c := range a.Cubics() {
		if !c.IsFinite() {
			return nil
		}
		out = append(out, c.Seg())
	}
	return out
}
