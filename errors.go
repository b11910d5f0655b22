package svgpath

import (
	"errors"
	"fmt"
)

// Parsing fails with a [*SyntaxError] wrapping one of these.
var (
	// ErrMalformedNumber means a number was required but the input at that
	// position does not form a valid numeric literal.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrInvalidArcFlag means an arc's large-arc or sweep flag is not 0 or 1.
	ErrInvalidArcFlag = errors.New("invalid arc flag")
	// ErrUnknownCommand means a command letter was required but not found,
	// and the previous command cannot be repeated implicitly.
	ErrUnknownCommand = errors.New("unknown command")
)

// SyntaxError describes where and why path data failed to parse.
type SyntaxError struct {
	// Offset is the byte offset into the path data at which parsing failed.
	Offset int
	// Cmd is the command being parsed, or zero if the failure happened while
	// looking for a command.
	Cmd Command
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Cmd == 0 {
		return fmt.Sprintf("svgpath: offset %d: %s", e.Offset, e.Err)
	}
	return fmt.Sprintf("svgpath: offset %d: %s in %s command", e.Offset, e.Err, e.Cmd.Name())
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
