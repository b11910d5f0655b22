package svgpath

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, -1e308).IsFinite() {
		t.Error("(1, -1e308) should be finite")
	}
	for _, pt := range []Point{Pt(math.Inf(1), 0), Pt(0, math.Inf(-1)), Pt(math.NaN(), 0), Pt(0, math.NaN())} {
		if pt.IsFinite() {
			t.Errorf("%s should not be finite", pt)
		}
	}
}

func TestPointReflectAbout(t *testing.T) {
	diff(t, Pt(10, 20), Pt(0, 0).ReflectAbout(Pt(5, 10)))
	diff(t, Pt(3, 3), Pt(3, 3).ReflectAbout(Pt(3, 3)))
}

func TestVecAngleTo(t *testing.T) {
	tests := []struct {
		v, o Vec2
		want float64
	}{
		{Vec(1, 0), Vec(1, 0), 0},
		{Vec(1, 0), Vec(0, 1), 1.5707963267948966},
		{Vec(1, 0), Vec(0, -1), -1.5707963267948966},
		{Vec(1, 0), Vec(-1, 0), 3.141592653589793},
		// Slightly denormalized input must not produce NaN.
		{Vec(1, 0), Vec(1+1e-15, 0), 0},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.v.AngleTo(tt.o), approx(1e-12))
	}
}
