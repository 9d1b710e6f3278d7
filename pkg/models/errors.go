package models

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("malformed geometry")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ParseError reports a malformed line in a geometry file.
type ParseError struct {
	Path string // file name as given to the parser
	Line int    // 1-based line number
	Text string // offending line, trimmed
	Err  error  // underlying cause (strconv error or a description)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (%q)", e.Path, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse so callers can branch without a type assertion.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IndexError reports a face referencing a vertex that does not exist, or an
// accessor called with an out-of-range index. Face is -1 when the error did
// not come from a face record.
type IndexError struct {
	Kind  string // "vertex" or "face"
	Face  int
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Face < 0 {
		return fmt.Sprintf("%s index %d out of range [0, %d)", e.Kind, e.Index, e.Count)
	}
	return fmt.Sprintf("face %d: %s index %d out of range [0, %d)", e.Face, e.Kind, e.Index, e.Count)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
