package sqlvec

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned by [Vec.Scan] when the stored value is
	// not text.
	ErrTypeMismatch = errors.New("sqlvec: stored value is not text")

	// ErrUnsupportedType is returned when the element type can neither be
	// produced as text nor reconstructed from it.
	ErrUnsupportedType = errors.New("sqlvec: unsupported element type")
)

// ParseError reports a segment of stored text that could not be
// reconstructed into an element. It wraps the underlying conversion error.
type ParseError struct {
	// Index is the zero-based position of the segment in the stored text.
	Index int
	// Segment is the raw text of the segment.
	Segment string
	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sqlvec: parse segment %d `%s`: %v", e.Index, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
