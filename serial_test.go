package sqlvec_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/teenjuna/sqlvec"
	"github.com/teenjuna/sqlvec/internal/testing/require"
)

// Structured serialization must be transparent delegation to the inner
// slice and must not involve the SQL text delimiter.

func TestJSONTransparent(t *testing.T) {
	items := []string{"one", "two"}
	vec := sqlvec.New(items...)

	data, err := json.Marshal(vec)
	require.Nil(t, err)

	plain, err := json.Marshal(items)
	require.Nil(t, err)
	require.Equal(t, data, plain)
	require.Equal(t, strings.Contains(string(data), delim), false)

	var decoded sqlvec.Vec[string]
	require.Nil(t, json.Unmarshal(data, &decoded))
	require.Equal(t, decoded.Items(), items)
}

func TestMsgpackTransparent(t *testing.T) {
	items := []int{1, 2, 3}
	vec := sqlvec.New(items...)

	data, err := msgpack.Marshal(vec)
	require.Nil(t, err)

	plain, err := msgpack.Marshal(items)
	require.Nil(t, err)
	require.Equal(t, data, plain)

	var decoded sqlvec.Vec[int]
	require.Nil(t, msgpack.Unmarshal(data, &decoded))
	require.Equal(t, decoded.Items(), items)
}

func TestCBORTransparent(t *testing.T) {
	items := []string{"one", "two"}
	vec := sqlvec.New(items...)

	data, err := cbor.Marshal(vec)
	require.Nil(t, err)

	plain, err := cbor.Marshal(items)
	require.Nil(t, err)
	require.Equal(t, data, plain)

	var decoded sqlvec.Vec[string]
	require.Nil(t, cbor.Unmarshal(data, &decoded))
	require.Equal(t, decoded.Items(), items)
}
