package svgpath

// CubicBez is a cubic Bézier curve. Every curve the normalizer emits is one.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// IsFinite reports whether all four control points are finite.
func (c CubicBez) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// Seg returns the CurveTo segment that draws c from the current point, which
// is assumed to be c.P0.
func (c CubicBez) Seg() Segment {
	return CurveTo(c.P1, c.P2, c.P3)
}
