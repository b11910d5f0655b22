// Package svgpath parses SVG path data, the mini-language of the d attribute
// of <path> elements, and normalizes it into a small canonical form.
//
// # Pipeline
//
// Normalization happens in three stages that can also be invoked on their own:
//
//   - [ParsePathData] turns a string into raw [Segment] values, one per
//     command, exactly as written. Implicit command repetition ("M0 0 10 10")
//     is resolved, but relative commands stay relative.
//   - [Absolutize] resolves relative commands against the current point and
//     the start of the current subpath.
//   - [Simplify] rewrites every curve variant into cubic Béziers and every
//     axis-aligned line into a plain line.
//
// [Parse] runs all three. Its output only contains [CmdMoveTo], [CmdLineTo],
// [CmdCurveTo], and [CmdClosePath] segments in absolute coordinates, which
// lets rendering and editing code ignore the other sixteen commands.
//
// Callers that want to handle some commands themselves, for example to keep
// arcs as arcs, can stop after [Absolutize].
//
// # Segments
//
// A [Segment] is a tagged union: a [Command] letter and up to seven numeric
// parameters, in the order they appear in path data. [PathData] is a slice of
// segments. Both are plain values; no stage modifies its input.
//
// # Errors
//
// Path data is either parsed completely or not at all. Malformed input
// results in a [*SyntaxError] that wraps [ErrMalformedNumber],
// [ErrInvalidArcFlag], or [ErrUnknownCommand] and records the byte offset of
// the problem. Partial paths are never returned.
//
// Path data that doesn't start with a MoveTo is not an error; it parses as an
// empty path. Geometrically degenerate arcs aren't errors either. They draw
// nothing and are dropped by [Simplify].
//
// # Arcs
//
// Elliptical arcs are converted from endpoint parameterization ([SVGArc]) to
// center parameterization ([Arc]) and approximated with one cubic Bézier per
// quarter turn or fraction thereof. See [SVGArc.Center] and [Arc.Cubics].
//
// # Concurrency
//
// All functions may be called concurrently. Apart from the logger set with
// [SetLogger], the package has no global state.
package svgpath
