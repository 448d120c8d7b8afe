package sqlvec

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// marshalItem produces the textual representation of one element.
//
// A type's own [encoding.TextMarshaler] implementation wins; otherwise
// string, bool, integer and float kinds are formatted with strconv.
func marshalItem[T any](item T) (string, error) {
	if m, ok := any(item).(encoding.TextMarshaler); ok {
		return marshalText(m)
	}
	if m, ok := any(&item).(encoding.TextMarshaler); ok {
		return marshalText(m)
	}

	rv := reflect.ValueOf(item)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedType, item)
}

func marshalText(m encoding.TextMarshaler) (string, error) {
	text, err := m.MarshalText()
	if err != nil {
		return "", fmt.Errorf("marshal text: %w", err)
	}
	return string(text), nil
}

// unmarshalItem reconstructs one element from its textual representation.
//
// Mirrors the precedence of marshalItem: a type's own
// [encoding.TextUnmarshaler] implementation wins, then strconv kinds.
func unmarshalItem[T any](text string) (T, error) {
	var item T

	if u, ok := any(&item).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return item, err
		}
		return item, nil
	}

	rv := reflect.ValueOf(&item).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(text)
		return item, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return item, err
		}
		rv.SetBool(b)
		return item, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return item, err
		}
		rv.SetInt(n)
		return item, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, rv.Type().Bits())
		if err != nil {
			return item, err
		}
		rv.SetUint(n)
		return item, nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return item, err
		}
		rv.SetFloat(f)
		return item, nil
	}

	return item, fmt.Errorf("%w: %T", ErrUnsupportedType, item)
}
