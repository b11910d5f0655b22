package svgpath

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, -1)), Pt(6, -4), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1), Pt(-2, 7)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineChain(t *testing.T) {
	// Scale first, then rotate a quarter turn, then translate. This is the
	// order the arc converter composes its unit-circle mapping in.
	const epsilon = 1e-9
	aff := Scale(2, 3).ThenRotate(math.Pi / 2).ThenTranslate(Vec(10, 20))

	assertNear(t, Pt(1, 0).Transform(aff), Pt(10, 22), epsilon)
	assertNear(t, Pt(0, 1).Transform(aff), Pt(7, 20), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(10, 20), epsilon)

	want := Translate(Vec(10, 20)).Mul(Rotate(math.Pi / 2)).Mul(Scale(2, 3))
	diff(t, want, aff, approx(1e-12))
}
