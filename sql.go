package sqlvec

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
)

var (
	_ driver.Valuer = (*Vec[string])(nil)
	_ sql.Scanner   = (*Vec[string])(nil)
)

// Value implements [driver.Valuer]. The vector is bound as a single TEXT
// value of delimiter-separated element representations.
func (v *Vec[T]) Value() (driver.Value, error) {
	text, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan implements [sql.Scanner]. It accepts a string or []byte stored
// value and replaces the vector's contents with the decoded sequence.
//
// Any other stored value, including NULL, fails with [ErrTypeMismatch];
// columns that may be NULL should be read through [sql.NullString] first.
// A segment that fails to parse surfaces as a [*ParseError] and leaves the
// vector unchanged.
func (v *Vec[T]) Scan(src any) error {
	switch src := src.(type) {
	case string:
		return v.UnmarshalText([]byte(src))
	case []byte:
		return v.UnmarshalText(src)
	}
	return fmt.Errorf("%w: %T", ErrTypeMismatch, src)
}
