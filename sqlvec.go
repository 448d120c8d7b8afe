// Package sqlvec stores ordered sequences of values as single TEXT columns
// through database/sql.
//
// [Vec] is a generic container for elements that convert to and from text.
// It implements [database/sql/driver.Valuer] and [database/sql.Scanner]:
// when bound as a statement parameter, the elements are joined into one
// string separated by [Delimiter]; when a column is scanned back, that
// string is split and parsed into a fresh sequence in the original order.
//
// The delimiter is reserved. An element whose textual representation
// contains it produces a stored value that decodes into a different, split
// sequence. The codec neither detects nor escapes such collisions; keeping
// them out of element values is the caller's responsibility.
//
// Structured serialization (JSON, msgpack, CBOR) is a separate surface that
// delegates to the underlying slice and never uses the delimiter.
package sqlvec

import (
	"iter"
	"slices"
)

// Vec is an ordered sequence of elements of type T.
//
// Element types must either implement both [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler], or be of a string, bool, integer or float
// kind (named types included). Other element types fail conversion with
// [ErrUnsupportedType].
//
// The zero value is an empty, usable vector. A Vec owns its elements: the
// slice passed to [New] is copied in, and [Vec.Items] copies out.
type Vec[T any] struct {
	items []T
}

// New creates a Vec holding a copy of the provided items.
func New[T any](items ...T) *Vec[T] {
	return &Vec[T]{items: slices.Clone(items)}
}

// Collect creates a Vec from a sequence of items.
func Collect[T any](seq iter.Seq[T]) *Vec[T] {
	return &Vec[T]{items: slices.Collect(seq)}
}

// Items returns a copy of the vector's elements in order.
func (v *Vec[T]) Items() []T {
	return slices.Clone(v.items)
}

// Iter returns a sequence over the vector's elements in order.
func (v *Vec[T]) Iter() iter.Seq[T] {
	return slices.Values(v.items)
}

// Len returns the number of elements in the vector.
func (v *Vec[T]) Len() int {
	return len(v.items)
}
