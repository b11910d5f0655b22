package svgpath

import (
	"fmt"
	"strings"
)

// Segment is one path command together with its parameters.
//
// Args holds the parameters in the order they appear in path data; only the
// first Cmd.Arity() entries are meaningful. Arc parameters are rx, ry, the
// x-axis rotation in degrees, the large-arc flag, the sweep flag, x, and y,
// with both flags stored as 0 or 1.
//
// Segments are plain values. Every stage of the pipeline returns new segments
// and never modifies its input.
type Segment struct {
	Cmd  Command
	Args [7]float64
}

func MoveTo(pt Point) Segment {
	return Segment{Cmd: CmdMoveTo, Args: [7]float64{pt.X, pt.Y}}
}

func LineTo(pt Point) Segment {
	return Segment{Cmd: CmdLineTo, Args: [7]float64{pt.X, pt.Y}}
}

func CurveTo(c1, c2, pt Point) Segment {
	return Segment{Cmd: CmdCurveTo, Args: [7]float64{c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y}}
}

func ClosePath() Segment {
	return Segment{Cmd: CmdClosePath}
}

func HorizontalTo(x float64) Segment {
	return Segment{Cmd: CmdHorizontalTo, Args: [7]float64{x}}
}

func VerticalTo(y float64) Segment {
	return Segment{Cmd: CmdVerticalTo, Args: [7]float64{y}}
}

func QuadTo(c, pt Point) Segment {
	return Segment{Cmd: CmdQuadTo, Args: [7]float64{c.X, c.Y, pt.X, pt.Y}}
}

func SmoothCurveTo(c2, pt Point) Segment {
	return Segment{Cmd: CmdSmoothCurveTo, Args: [7]float64{c2.X, c2.Y, pt.X, pt.Y}}
}

func SmoothQuadTo(pt Point) Segment {
	return Segment{Cmd: CmdSmoothQuadTo, Args: [7]float64{pt.X, pt.Y}}
}

// ArcTo returns an elliptical arc segment. xRotation is in degrees, as in path
// data.
func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) Segment {
	return Segment{
		Cmd:  CmdArcTo,
		Args: [7]float64{radii.X, radii.Y, xRotation, boolFlag(largeArc), boolFlag(sweep), pt.X, pt.Y},
	}
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Rel returns seg with its command switched to the relative form. The
// parameters are not changed; they are reinterpreted as offsets.
func (seg Segment) Rel() Segment {
	seg.Cmd = seg.Cmd.Rel()
	return seg
}

// Params returns the meaningful prefix of seg.Args.
func (seg Segment) Params() []float64 {
	return seg.Args[:seg.Cmd.Arity()]
}

// EndPoint returns the point the segment draws to, or false if it cannot be
// determined from the segment alone. This is the case for relative commands,
// for HorizontalTo and VerticalTo, and for ClosePath.
func (seg Segment) EndPoint() (Point, bool) {
	switch seg.Cmd {
	case CmdMoveTo, CmdLineTo, CmdSmoothQuadTo:
		return Pt(seg.Args[0], seg.Args[1]), true
	case CmdQuadTo, CmdSmoothCurveTo:
		return Pt(seg.Args[2], seg.Args[3]), true
	case CmdCurveTo:
		return Pt(seg.Args[4], seg.Args[5]), true
	case CmdArcTo:
		return Pt(seg.Args[5], seg.Args[6]), true
	default:
		return Point{}, false
	}
}

// Transform applies aff to every point of an absolute MoveTo, LineTo,
// CurveTo, QuadTo, SmoothCurveTo, or SmoothQuadTo segment. Other segments are
// returned unchanged: ClosePath has no points, and the remaining commands
// cannot be expressed after a general affine transform. Simplify a path before
// transforming it.
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Cmd {
	case CmdMoveTo, CmdLineTo, CmdCurveTo, CmdQuadTo, CmdSmoothCurveTo, CmdSmoothQuadTo:
		for i := 0; i+1 < seg.Cmd.Arity(); i += 2 {
			pt := Pt(seg.Args[i], seg.Args[i+1]).Transform(aff)
			seg.Args[i], seg.Args[i+1] = pt.X, pt.Y
		}
	}
	return seg
}

// Named returns the parameters of a canonical segment keyed by name: x and y
// for MoveTo and LineTo; c1x, c1y, c2x, c2y, x, and y for CurveTo; and an
// empty map for ClosePath. It returns nil for every other command.
func (seg Segment) Named() map[string]float64 {
	a := seg.Args
	switch seg.Cmd {
	case CmdMoveTo, CmdLineTo:
		return map[string]float64{"x": a[0], "y": a[1]}
	case CmdCurveTo:
		return map[string]float64{
			"c1x": a[0], "c1y": a[1],
			"c2x": a[2], "c2y": a[3],
			"x": a[4], "y": a[5],
		}
	case CmdClosePath:
		return map[string]float64{}
	default:
		return nil
	}
}

func (seg Segment) String() string {
	var sb strings.Builder
	sb.WriteString(seg.Cmd.Name())
	sb.WriteByte('(')
	for i, v := range seg.Params() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// PathData is an ordered sequence of segments.
type PathData []Segment

// IsCanonical reports whether p only consists of absolute MoveTo, LineTo,
// CurveTo, and ClosePath segments and, unless empty, starts with a MoveTo.
// The output of [Parse] and [Simplify] (given absolute input that starts
// with a MoveTo) is always canonical.
func (p PathData) IsCanonical() bool {
	if len(p) > 0 && p[0].Cmd != CmdMoveTo {
		return false
	}
	for _, seg := range p {
		switch seg.Cmd {
		case CmdMoveTo, CmdLineTo, CmdCurveTo, CmdClosePath:
		default:
			return false
		}
	}
	return true
}

// Transform returns a copy of p with aff applied to every segment. See
// [Segment.Transform] for which segments can be transformed.
func (p PathData) Transform(aff Affine) PathData {
	out := make(PathData, len(p))
	for i, seg := range p {
		out[i] = seg.Transform(aff)
	}
	return out
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// It uses control points directly rather than computing tight bounds for
// curves. Only segments with a known [Segment.EndPoint] contribute, so p
// should be absolute. An empty path has an empty box at the origin.
func (p PathData) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, seg := range p {
		switch seg.Cmd {
		case CmdCurveTo:
			addPt(Pt(seg.Args[0], seg.Args[1]))
			addPt(Pt(seg.Args[2], seg.Args[3]))
		case CmdQuadTo, CmdSmoothCurveTo:
			addPt(Pt(seg.Args[0], seg.Args[1]))
		}
		if pt, ok := seg.EndPoint(); ok {
			addPt(pt)
		}
	}
	return cbox
}

func (p PathData) String() string {
	var sb strings.Builder
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}
