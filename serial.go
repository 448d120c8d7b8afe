package sqlvec

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Structured serialization of a Vec is transparent: in each format below
// the vector serializes exactly as its underlying slice would. These paths
// are independent of the delimited text codec used for SQL storage and
// never involve the delimiter.

var (
	_ json.Marshaler        = (*Vec[string])(nil)
	_ json.Unmarshaler      = (*Vec[string])(nil)
	_ msgpack.CustomEncoder = (*Vec[string])(nil)
	_ msgpack.CustomDecoder = (*Vec[string])(nil)
	_ cbor.Marshaler        = (*Vec[string])(nil)
	_ cbor.Unmarshaler      = (*Vec[string])(nil)
)

// MarshalJSON implements [json.Marshaler].
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.items)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.items)
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (v *Vec[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(v.items)
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (v *Vec[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&v.items)
}

// MarshalCBOR implements [cbor.Marshaler].
func (v *Vec[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.items)
}

// UnmarshalCBOR implements [cbor.Unmarshaler].
func (v *Vec[T]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &v.items)
}
