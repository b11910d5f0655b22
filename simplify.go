package svgpath

import (
	"log/slog"
)

// SimplifyState is the state [SimplifyFrom] carries between segments.
type SimplifyState struct {
	Cursor
	// LastCmd is the command of the previous input segment. Smooth curves
	// only reflect LastControl if LastCmd is a curve of the same degree.
	LastCmd Command
	// LastControl is the final control point of the previous curve, in its
	// original degree: the quadratic control point after Q and T, the second
	// cubic control point after C and S.
	LastControl Point
}

// Simplify rewrites absolute path data so that it only uses MoveTo, LineTo,
// CurveTo, and ClosePath.
//
//   - HorizontalTo and VerticalTo become LineTo.
//   - QuadTo and SmoothQuadTo are raised to cubic Béziers.
//   - SmoothCurveTo becomes CurveTo with an explicit first control point.
//   - ArcTo becomes up to four CurveTo segments, or none at all if the arc is
//     degenerate. The current point still moves to the arc's end point.
//
// Relative segments are not expected; they are copied to the output as is.
// Run [Absolutize] first. The input is not modified.
func Simplify(data PathData) PathData {
	out, _ := SimplifyFrom(data, SimplifyState{})
	return out
}

// SimplifyFrom is like [Simplify] but starts from st instead of the zero
// state, and also returns the state after the last segment.
func SimplifyFrom(data PathData, st SimplifyState) (PathData, SimplifyState) {
	out := make(PathData, 0, len(data))
	for _, seg := range data {
		out, st = simplifySegment(out, seg, st)
	}
	return out, st
}

func simplifySegment(out PathData, seg Segment, st SimplifyState) (PathData, SimplifyState) {
	cur := st.Current
	a := seg.Args

	switch seg.Cmd {
	case CmdHorizontalTo:
		out = append(out, LineTo(Pt(a[0], cur.Y)))

	case CmdVerticalTo:
		out = append(out, LineTo(Pt(cur.X, a[0])))

	case CmdCurveTo:
		out = append(out, seg)
		st.LastControl = Pt(a[2], a[3])

	case CmdSmoothCurveTo:
		c1 := cur
		if st.LastCmd == CmdCurveTo || st.LastCmd == CmdSmoothCurveTo {
			c1 = st.LastControl.ReflectAbout(cur)
		}
		c2 := Pt(a[0], a[1])
		out = append(out, CurveTo(c1, c2, Pt(a[2], a[3])))
		st.LastControl = c2

	case CmdQuadTo:
		ctrl := Pt(a[0], a[1])
		out = append(out, QuadBez{cur, ctrl, Pt(a[2], a[3])}.Raise().Seg())
		st.LastControl = ctrl

	case CmdSmoothQuadTo:
		ctrl := cur
		if st.LastCmd == CmdQuadTo || st.LastCmd == CmdSmoothQuadTo {
			ctrl = st.LastControl.ReflectAbout(cur)
		}
		out = append(out, QuadBez{cur, ctrl, Pt(a[0], a[1])}.Raise().Seg())
		st.LastControl = ctrl

	case CmdArcTo:
		end := Pt(a[5], a[6])
		cubics := ArcToCubics(cur, end, a[0], a[1], a[2], a[3] != 0, a[4] != 0)
		if len(cubics) == 0 {
			Logger().Debug("svgpath: skipping degenerate arc",
				slog.String("from", cur.String()),
				slog.String("to", end.String()),
				slog.Float64("rx", a[0]),
				slog.Float64("ry", a[1]))
		}
		out = append(out, cubics...)

	default:
		// MoveTo, LineTo, ClosePath, and anything we don't know how to
		// simplify.
		out = append(out, seg)
	}

	st.Cursor = st.Cursor.advance(seg)
	st.LastCmd = seg.Cmd
	return out, st
}
