package existential

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

var null = []byte("null")

// IsNull reports whether data is the JSON literal null, ignoring
// surrounding whitespace.
//
// Anything else, including malformed input, is not null. Optional
// wrappers pass such input on to their normal decoding path, which
// reports the error.
func IsNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), null)
}

// Null returns the JSON encoding of an absent value.
func Null() []byte {
	return bytes.Clone(null)
}

// SplitArray splits the JSON array in data into the encodings of its
// elements. A null is not an array: optional wrappers check for it
// with [IsNull] first.
func SplitArray(data []byte) ([][]byte, error) {
	if IsNull(data) {
		return nil, fmt.Errorf("expected JSON array, got %s", bytes.TrimSpace(data))
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ret := make([][]byte, len(raw))
	for i, r := range raw {
		ret[i] = r
	}
	return ret, nil
}

// JoinArray returns the JSON array whose elements are the given
// encodings.
func JoinArray(elems [][]byte) []byte {
	var out bytes.Buffer
	out.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			out.WriteByte(',')
		}
		out.Write(e)
	}
	out.WriteByte(']')
	return out.Bytes()
}
