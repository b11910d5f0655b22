package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsolutize(t *testing.T) {
	in := PathData{
		MoveTo(Pt(10, 10)).Rel(),
		LineTo(Pt(5, 0)).Rel(),
		HorizontalTo(5).Rel(),
		VerticalTo(5).Rel(),
		CurveTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)).Rel(),
		SmoothCurveTo(Pt(1, 0), Pt(2, 0)).Rel(),
		QuadTo(Pt(0, 1), Pt(0, 2)).Rel(),
		SmoothQuadTo(Pt(1, 1)).Rel(),
		ArcTo(Vec(-3, 4), 15, true, false, Pt(-5, -5)).Rel(),
		ClosePath().Rel(),
		LineTo(Pt(1, 2)).Rel(),
	}
	want := PathData{
		MoveTo(Pt(10, 10)),
		LineTo(Pt(15, 10)),
		HorizontalTo(20),
		VerticalTo(15),
		// All three points are relative to (20, 15), not to each other.
		CurveTo(Pt(21, 16), Pt(22, 17), Pt(23, 18)),
		SmoothCurveTo(Pt(24, 18), Pt(25, 18)),
		QuadTo(Pt(25, 19), Pt(25, 20)),
		SmoothQuadTo(Pt(26, 21)),
		// Only the end point of an arc is a coordinate.
		ArcTo(Vec(-3, 4), 15, true, false, Pt(21, 16)),
		ClosePath(),
		LineTo(Pt(11, 12)),
	}
	diff(t, want, Absolutize(in))
}

func TestAbsolutizeDoesNotModifyInput(t *testing.T) {
	in := PathData{MoveTo(Pt(1, 1)), LineTo(Pt(1, 1)).Rel()}
	orig := append(PathData(nil), in...)
	_ = Absolutize(in)
	diff(t, orig, in)
}

func TestAbsolutizeIdempotent(t *testing.T) {
	inputs := []string{
		"M0,0 L10,0 L10,10 Z",
		"m1 1 h5 v5 z m3 3 l1 1",
		"m0 0 c1 1 2 2 3 3 s4 4 5 5 q1 1 2 2 t3 3 a1 1 0 0 0 2 2 z",
		"M10 80 Q 52.5 10, 95 80 T 180 80",
	}
	for _, in := range inputs {
		raw, err := ParsePathData(in)
		require.NoError(t, err)
		once := Absolutize(raw)
		diff(t, once, Absolutize(once))
		for _, seg := range once {
			require.False(t, seg.Cmd.IsRelative(), "%s: %s", in, seg)
		}
	}
}

func TestAbsolutizeFrom(t *testing.T) {
	// Absolutizing a path in two halves must give the same result as doing
	// it in one go.
	raw, err := ParsePathData("m5 5 l1 1 z l2 2 h3 v-1")
	require.NoError(t, err)

	whole, wholeCur := AbsolutizeFrom(raw, Cursor{})
	first, cur := AbsolutizeFrom(raw[:3], Cursor{})
	second, cur := AbsolutizeFrom(raw[3:], cur)

	diff(t, whole, append(first, second...))
	diff(t, wholeCur, cur)
	diff(t, Cursor{Current: Pt(10, 6), SubpathStart: Pt(5, 5)}, cur)
}
