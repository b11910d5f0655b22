package svgpath

import (
	"iter"
	"log/slog"
)

// Segments returns an iterator over the raw segments of the path data d, in
// the order they appear. Commands keep their original letters, so relative
// commands and every curve variant are yielded as written. Implicit command
// repetition is resolved: "M0 0 1 1" yields a MoveTo followed by a LineTo.
//
// Path data that, after leading whitespace, does not start with a MoveTo
// yields nothing. If the data is malformed, the iterator yields the segments
// parsed so far followed by a [*SyntaxError] and stops. Callers that want all
// or nothing should use [ParsePathData].
func Segments(d string, opts ...ParseOption) iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		s := newScanner(d, newParseOptions(opts))
		if !s.skipSpaces() {
			return
		}
		if c := Command(s.buf[s.pos]); c != CmdMoveTo && c != CmdMoveToRel {
			return
		}
		for s.pos < s.end {
			seg, err := s.segment()
			if err != nil {
				yield(Segment{}, err)
				return
			}
			if !yield(seg, nil) {
				return
			}
		}
	}
}

// ParsePathData parses the path data d into raw segments without resolving
// relative coordinates or simplifying curves. See [Segments] for the details.
//
// It returns either every segment or, if d is malformed, nil and a
// [*SyntaxError]. Path data that does not start with a MoveTo results in an
// empty path and no error.
func ParsePathData(d string, opts ...ParseOption) (PathData, error) {
	var out PathData
	for seg, err := range Segments(d, opts...) {
		if err != nil {
			Logger().Debug("svgpath: rejected path data", slog.Any("error", err), slog.Int("length", len(d)))
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

// Parse parses the path data d and normalizes it. The result consists only
// of absolute MoveTo, LineTo, CurveTo, and ClosePath segments, starting with a
// MoveTo.
//
// Parse is equivalent to calling [ParsePathData], [Absolutize], and
// [Simplify] in turn.
func Parse(d string, opts ...ParseOption) (PathData, error) {
	raw, err := ParsePathData(d, opts...)
	if err != nil || len(raw) == 0 {
		return nil, err
	}
	return Simplify(Absolutize(raw)), nil
}
