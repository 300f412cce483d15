package existential

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-json"
)

// OptionalDecodingSupport is implemented by (pointers to) optional
// wrappers that decode. [Object.Decode] calls DecodeAbsent when the
// wrapper's key is missing, instead of failing.
type OptionalDecodingSupport interface {
	DecodeAbsent()
}

// OptionalEncodingSupport is implemented by optional wrappers that
// encode. [Object.Encode] omits the key of an absent wrapper, unless
// ShouldEncodeNil asks for an explicit null.
type OptionalEncodingSupport interface {
	IsAbsent() bool
	ShouldEncodeNil() bool
}

// An Object is a JSON object being assembled or taken apart one key
// at a time. It applies the nil policy of optional wrappers to the
// keys it holds.
//
// Keys are encoded in the order they were first set.
type Object struct {
	keys   []string
	fields map[string][]byte
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{fields: map[string][]byte{}}
}

// DecodeObject parses the JSON object in data.
func DecodeObject(data []byte) (*Object, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("expected JSON object, got %s", bytes.TrimSpace(data))
	}
	ret := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		ret.Set(k, m[k])
	}
	return ret, nil
}

// Has reports whether key is present in the object.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Keys returns the keys of the object, in encoding order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Set sets key to the raw JSON encoding val.
func (o *Object) Set(key string, val []byte) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = val
}

// Decode decodes the value of key into dst.
//
// If key is missing and dst implements [OptionalDecodingSupport], dst
// is set to its absent value. If key is missing otherwise, Decode
// returns a [KeyNotFoundError].
func (o *Object) Decode(key string, dst any) error {
	raw, ok := o.fields[key]
	if !ok {
		if opt, ok := dst.(OptionalDecodingSupport); ok {
			opt.DecodeAbsent()
			return nil
		}
		return KeyNotFoundError{key}
	}
	var err error
	if d, ok := dst.(Decodable); ok {
		err = d.UnmarshalJSON(raw)
	} else {
		err = json.Unmarshal(raw, dst)
	}
	if err != nil {
		return fmt.Errorf("decoding key %q: %w", key, err)
	}
	return nil
}

// Encode sets key to the encoding of src.
//
// If src implements [OptionalEncodingSupport] and is absent, key is
// omitted, or set to null if src.ShouldEncodeNil returns true.
func (o *Object) Encode(key string, src any) error {
	if opt, ok := src.(OptionalEncodingSupport); ok && opt.IsAbsent() {
		if opt.ShouldEncodeNil() {
			o.Set(key, Null())
		}
		return nil
	}
	var (
		bs  []byte
		err error
	)
	if e, ok := src.(Encodable); ok {
		bs, err = e.MarshalJSON()
	} else {
		bs, err = json.Marshal(src)
	}
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	o.Set(key, bs)
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler].
func (o *Object) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			out.WriteByte(',')
		}
		ks, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		out.Write(ks)
		out.WriteByte(':')
		out.Write(o.fields[k])
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}
