package svgpath

// Cursor is the drawing state carried from one segment to the next.
type Cursor struct {
	// Current is the current point, where the next segment starts.
	Current Point
	// SubpathStart is the point of the most recent MoveTo. ClosePath returns
	// to it.
	SubpathStart Point
}

// advance returns the cursor after drawing the absolute segment seg.
func (cur Cursor) advance(seg Segment) Cursor {
	switch seg.Cmd {
	case CmdMoveTo:
		cur.Current = Pt(seg.Args[0], seg.Args[1])
		cur.SubpathStart = cur.Current
	case CmdClosePath:
		cur.Current = cur.SubpathStart
	case CmdHorizontalTo:
		cur.Current.X = seg.Args[0]
	case CmdVerticalTo:
		cur.Current.Y = seg.Args[0]
	default:
		if pt, ok := seg.EndPoint(); ok {
			cur.Current = pt
		}
	}
	return cur
}

// Absolutize converts every relative segment of data into its absolute
// equivalent, starting from the origin. Absolute segments are copied as is,
// so absolutizing absolute data has no effect. Relative ClosePath segments
// become absolute ClosePath segments.
//
// The input is not modified.
func Absolutize(data PathData) PathData {
	out, _ := AbsolutizeFrom(data, Cursor{})
	return out
}

// AbsolutizeFrom is like [Absolutize] but starts from cur instead of the
// origin. It also returns the cursor after the last segment, so that a path
// can be absolutized piecewise.
func AbsolutizeFrom(data PathData, cur Cursor) (PathData, Cursor) {
	out := make(PathData, len(data))
	for i, seg := range data {
		seg = absolutizeSegment(seg, cur.Current)
		cur = cur.advance(seg)
		out[i] = seg
	}
	return out, cur
}

// absolutizeSegment offsets the coordinates of a relative segment by the
// current point. Every coordinate pair of the segment is relative to the same
// point, the one before the segment.
func absolutizeSegment(seg Segment, current Point) Segment {
	if !seg.Cmd.IsRelative() {
		return seg
	}
	switch seg.Cmd.Abs() {
	case CmdClosePath:
	case CmdHorizontalTo:
		seg.Args[0] += current.X
	case CmdVerticalTo:
		seg.Args[0] += current.Y
	case CmdArcTo:
		// Radii, rotation and flags are not coordinates.
		seg.Args[5] += current.X
		seg.Args[6] += current.Y
	default:
		for i := 0; i+1 < seg.Cmd.Arity(); i += 2 {
			seg.Args[i] += current.X
			seg.Args[i+1] += current.Y
		}
	}
	seg.Cmd = seg.Cmd.Abs()
	return seg
}
