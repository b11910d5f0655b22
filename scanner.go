package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// scanner is a cursor over path data. It is owned by a single parse and never
// shared.
type scanner struct {
	buf  []byte
	pos  int
	end  int
	prev Command
	opts parseOptions
}

func newScanner(d string, opts parseOptions) *scanner {
	buf := []byte(d)
	return &scanner{
		buf:  buf,
		end:  len(buf),
		opts: opts,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberStart reports whether c can begin a numeric literal.
func isNumberStart(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

// skipSpaces advances past whitespace and reports whether input remains.
func (s *scanner) skipSpaces() bool {
	for s.pos < s.end && isSpace(s.buf[s.pos]) {
		s.pos++
	}
	return s.pos < s.end
}

// skipDelimiter advances past one delimiter run: whitespace, at most one
// comma, and more whitespace. Nothing is skipped if the cursor is not on a
// delimiter, which lets numbers run together as in "1-2" or "0.5.5".
func (s *scanner) skipDelimiter() {
	if s.pos >= s.end || (!isSpace(s.buf[s.pos]) && s.buf[s.pos] != ',') {
		return
	}
	if s.skipSpaces() && s.buf[s.pos] == ',' {
		s.pos++
		s.skipSpaces()
	}
}

func (s *scanner) digits() {
	for s.pos < s.end && isDigit(s.buf[s.pos]) {
		s.pos++
	}
}

func (s *scanner) errorf(err error) error {
	return &SyntaxError{Offset: s.pos, Cmd: s.prev, Err: err}
}

// number scans one numeric literal and the delimiter run after it.
//
// The grammar is an optional sign, digits, an optional fraction that must
// contain at least one digit, and an optional exponent. An "e" or "E"
// directly followed by "x" or "m" is a unit suffix ("em", "ex") and ends the
// number instead. A literal outside the range of a float64 is malformed. On
// failure the cursor is left where the literal stopped conforming.
func (s *scanner) number() (float64, error) {
	s.skipSpaces()
	start := s.pos

	if s.pos < s.end && (s.buf[s.pos] == '+' || s.buf[s.pos] == '-') {
		s.pos++
	}
	if s.pos >= s.end || (!isDigit(s.buf[s.pos]) && s.buf[s.pos] != '.') {
		return 0, s.errorf(ErrMalformedNumber)
	}
	s.digits()

	if s.pos < s.end && s.buf[s.pos] == '.' {
		s.pos++
		if s.pos >= s.end || !isDigit(s.buf[s.pos]) {
			return 0, s.errorf(ErrMalformedNumber)
		}
		s.digits()
	}

	if s.pos < s.end && (s.buf[s.pos] == 'e' || s.buf[s.pos] == 'E') && !s.unitSuffix() {
		s.pos++
		if s.pos < s.end && (s.buf[s.pos] == '+' || s.buf[s.pos] == '-') {
			s.pos++
		}
		if s.pos >= s.end || !isDigit(s.buf[s.pos]) {
			return 0, s.errorf(ErrMalformedNumber)
		}
		s.digits()
	}

	lexeme := s.buf[start:s.pos]
	f, n := strconv.ParseFloat(lexeme)
	if n != len(lexeme) {
		s.pos = start + n
		return 0, s.errorf(ErrMalformedNumber)
	}
	if math.IsInf(f, 0) {
		// Out of range for a float64.
		s.pos = start
		return 0, s.errorf(ErrMalformedNumber)
	}

	s.skipDelimiter()
	return f, nil
}

// unitSuffix reports whether the cursor is at "em" or "ex".
func (s *scanner) unitSuffix() bool {
	return s.pos+1 < s.end && (s.buf[s.pos+1] == 'x' || s.buf[s.pos+1] == 'm')
}

// flag scans a single-character arc flag and the delimiter run after it.
func (s *scanner) flag() (float64, error) {
	if s.pos >= s.end {
		return 0, s.errorf(ErrInvalidArcFlag)
	}
	var f float64
	switch s.buf[s.pos] {
	case '0':
		f = 0
	case '1':
		f = 1
	default:
		if !s.opts.lenientArcFlags {
			return 0, s.errorf(fmt.Errorf("%w %q", ErrInvalidArcFlag, s.buf[s.pos]))
		}
	}
	s.pos++
	s.skipDelimiter()
	return f, nil
}

// command determines the next command. It consumes an explicit command
// letter, or repeats the previous command when the input continues with a
// number. After a MoveTo, the repeated command is a LineTo.
func (s *scanner) command() (Command, error) {
	c := s.buf[s.pos]
	if cmd := Command(c); cmd.Valid() {
		s.pos++
		return cmd, nil
	}
	if !isNumberStart(c) || s.prev == 0 || s.prev.Abs() == CmdClosePath {
		return 0, &SyntaxError{Offset: s.pos, Err: fmt.Errorf("%w %q", ErrUnknownCommand, c)}
	}
	switch s.prev {
	case CmdMoveTo:
		return CmdLineTo, nil
	case CmdMoveToRel:
		return CmdLineToRel, nil
	default:
		return s.prev, nil
	}
}

// segment scans one command and its parameters. The cursor must not be at
// the end of the input.
func (s *scanner) segment() (Segment, error) {
	cmd, err := s.command()
	if err != nil {
		return Segment{}, err
	}
	s.prev = cmd

	seg := Segment{Cmd: cmd}
	switch cmd.Abs() {
	case CmdClosePath:
		s.skipSpaces()
	case CmdArcTo:
		for i := range 7 {
			if i == 3 || i == 4 {
				seg.Args[i], err = s.flag()
			} else {
				seg.Args[i], err = s.number()
			}
			if err != nil {
				return Segment{}, err
			}
		}
	default:
		for i := range cmd.Arity() {
			if seg.Args[i], err = s.number(); err != nil {
				return Segment{}, err
			}
		}
	}
	return seg, nil
}
