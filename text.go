package sqlvec

import "strings"

// Delimiter is the reserved rune separating element representations in the
// stored text. Element representations must never contain it; collisions
// are not detected and corrupt the decoded sequence.
const Delimiter = 'ñ'

// MarshalText encodes the vector as delimiter-separated text. An empty
// vector encodes to empty text, a single element to its representation
// with no delimiter.
func (v *Vec[T]) MarshalText() ([]byte, error) {
	var b strings.Builder
	for i, item := range v.items {
		text, err := marshalItem(item)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			b.WriteRune(Delimiter)
		}
		b.WriteString(text)
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes delimiter-separated text, replacing the vector's
// contents. Empty text decodes to an empty vector, so decoding is the
// exact inverse of encoding for every element count including zero.
//
// Decoding is all-or-nothing: if any segment fails to parse, the vector is
// left unchanged and a [*ParseError] naming the segment is returned.
func (v *Vec[T]) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		v.items = nil
		return nil
	}

	segments := strings.Split(string(text), string(Delimiter))
	items := make([]T, 0, len(segments))
	for i, segment := range segments {
		item, err := unmarshalItem[T](segment)
		if err != nil {
			return &ParseError{Index: i, Segment: segment, Err: err}
		}
		items = append(items, item)
	}

	v.items = items
	return nil
}
