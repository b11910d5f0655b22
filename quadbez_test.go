package svgpath

import (
	"testing"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	diff(t, q.P0, c.P0)
	diff(t, q.P2, c.P3)

	const epsilon = 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		assertNear(t, q.Eval(tt), c.Eval(tt), epsilon)
	}
}
