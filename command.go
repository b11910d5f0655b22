package svgpath

// Command is an SVG path command letter. Uppercase letters are absolute,
// lowercase letters are relative to the current point.
type Command byte

const (
	CmdMoveTo           Command = 'M'
	CmdMoveToRel        Command = 'm'
	CmdLineTo           Command = 'L'
	CmdLineToRel        Command = 'l'
	CmdHorizontalTo     Command = 'H'
	CmdHorizontalToRel  Command = 'h'
	CmdVerticalTo       Command = 'V'
	CmdVerticalToRel    Command = 'v'
	CmdCurveTo          Command = 'C'
	CmdCurveToRel       Command = 'c'
	CmdSmoothCurveTo    Command = 'S'
	CmdSmoothCurveToRel Command = 's'
	CmdQuadTo           Command = 'Q'
	CmdQuadToRel        Command = 'q'
	CmdSmoothQuadTo     Command = 'T'
	CmdSmoothQuadToRel  Command = 't'
	CmdArcTo            Command = 'A'
	CmdArcToRel         Command = 'a'
	CmdClosePath        Command = 'Z'
	CmdClosePathRel     Command = 'z'
)

// Valid reports whether c is one of the twenty SVG path command letters.
func (c Command) Valid() bool {
	switch c.Abs() {
	case CmdMoveTo, CmdLineTo, CmdHorizontalTo, CmdVerticalTo, CmdCurveTo,
		CmdSmoothCurveTo, CmdQuadTo, CmdSmoothQuadTo, CmdArcTo, CmdClosePath:
		return true
	default:
		return false
	}
}

// IsRelative reports whether c is the lowercase, relative form of a command.
func (c Command) IsRelative() bool {
	return c >= 'a' && c <= 'z' && c.Valid()
}

// Abs returns the absolute form of c. Absolute commands and invalid
// letters are returned unchanged.
func (c Command) Abs() Command {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Rel returns the relative form of c.
func (c Command) Rel() Command {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Arity returns the number of numeric parameters c takes. For arcs this
// includes both flags. Invalid commands have an arity of zero.
func (c Command) Arity() int {
	switch c.Abs() {
	case CmdClosePath:
		return 0
	case CmdHorizontalTo, CmdVerticalTo:
		return 1
	case CmdMoveTo, CmdLineTo, CmdSmoothQuadTo:
		return 2
	case CmdQuadTo, CmdSmoothCurveTo:
		return 4
	case CmdCurveTo:
		return 6
	case CmdArcTo:
		return 7
	default:
		return 0
	}
}

// Name returns a descriptive name such as "MoveTo" or "ArcToRel".
func (c Command) Name() string {
	var name string
	switch c.Abs() {
	case CmdMoveTo:
		name = "MoveTo"
	case CmdLineTo:
		name = "LineTo"
	case CmdHorizontalTo:
		name = "HorizontalTo"
	case CmdVerticalTo:
		name = "VerticalTo"
	case CmdCurveTo:
		name = "CurveTo"
	case CmdSmoothCurveTo:
		name = "SmoothCurveTo"
	case CmdQuadTo:
		name = "QuadTo"
	case CmdSmoothQuadTo:
		name = "SmoothQuadTo"
	case CmdArcTo:
		name = "ArcTo"
	case CmdClosePath:
		name = "ClosePath"
	default:
		return "InvalidCommand"
	}
	if c.IsRelative() {
		name += "Rel"
	}
	return name
}

func (c Command) String() string {
	if !c.Valid() {
		return "InvalidCommand"
	}
	return string(rune(c))
}
