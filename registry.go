package existential

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// TypeKey is the JSON object key under which a [Registry] records the
// discriminator of an encoded value.
const TypeKey = "__type"

// A RegistryEntry associates a concrete type with its discriminator
// in a [Registry] for the interface type E.
type RegistryEntry[E any] struct {
	key    string
	typ    reflect.Type
	decode func(data []byte) (E, error)
}

// Key returns the entry's discriminator.
func (e RegistryEntry[E]) Key() string { return e.key }

// Type returns the entry's concrete type.
func (e RegistryEntry[E]) Type() reflect.Type { return e.typ }

// Expect returns a registry entry for the concrete type C, which is
// recorded under key. upcast converts C to the interface type E,
// normally by returning its argument.
func Expect[C, E any](key string, upcast func(C) E) RegistryEntry[E] {
	return RegistryEntry[E]{
		key: key,
		typ: reflect.TypeFor[C](),
		decode: func(data []byte) (E, error) {
			var v C
			if err := json.Unmarshal(data, &v); err != nil {
				var zero E
				return zero, err
			}
			return upcast(v), nil
		},
	}
}

// A Registry encodes and decodes values of the interface type E, for
// a closed set of concrete types.
//
// Encoded values are JSON objects: the encoding of the concrete value
// with an extra [TypeKey] field naming its discriminator. Decoding
// reads the discriminator, and decodes the whole object as the
// concrete type registered under it.
type Registry[E any] struct {
	byKey  map[string]RegistryEntry[E]
	byType map[reflect.Type]string
}

// NewRegistry returns a Registry for the given entries.
//
// NewRegistry panics if two entries share a discriminator or a
// type. existgen rejects such registries when generating them.
func NewRegistry[E any](entries ...RegistryEntry[E]) *Registry[E] {
	ret := &Registry[E]{
		byKey:  map[string]RegistryEntry[E]{},
		byType: map[reflect.Type]string{},
	}
	for _, e := range entries {
		if _, ok := ret.byKey[e.Key()]; ok {
			panic(fmt.Sprintf("duplicate registry key %q", e.Key()))
		}
		if prev, ok := ret.byType[e.Type()]; ok {
			panic(fmt.Sprintf("type %s registered as both %q and %q", e.Type(), prev, e.Key()))
		}
		ret.byKey[e.Key()] = e
		ret.byType[e.Type()] = e.Key()
	}
	return ret
}

// Keys returns the registered discriminators, sorted.
func (r *Registry[E]) Keys() []string {
	return slices.Sorted(maps.Keys(r.byKey))
}

// Encode returns the tagged JSON encoding of v.
//
// Absent optional wrappers in the fields of v follow the nil policy
// of [Object.Encode]: their keys are omitted unless they ask for an
// explicit null.
//
// Encode returns an [UnexpectedTypeError] if the dynamic type of v is
// not registered, and an [EncodingError] if v does not encode to a
// JSON object or already has a [TypeKey] field.
func (r *Registry[E]) Encode(v E) ([]byte, error) {
	a := any(v)
	if a == nil {
		return nil, unexpectedType(nil)
	}
	t := reflect.TypeOf(a)
	key, ok := r.byType[t]
	if !ok {
		return nil, unexpectedType(a)
	}

	bs, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	bs = bytes.TrimSpace(bs)
	if len(bs) < 2 || bs[0] != '{' {
		return nil, encodingErr(derefType(t), "registered values must encode as JSON objects, got %s", bs)
	}
	fields, err := DecodeObject(bs)
	if err != nil {
		return nil, err
	}
	if fields.Has(TypeKey) {
		return nil, encodingErr(derefType(t), "value has its own %q field", TypeKey)
	}
	ks, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}

	out := NewObject()
	out.Set(TypeKey, ks)
	if err := copyFields(out, fields, reflect.ValueOf(a)); err != nil {
		return nil, err
	}
	return out.MarshalJSON()
}

// copyFields copies the encoded fields of the struct v from fields to
// out, in declaration order. Absent optional wrappers go through
// [Object.Encode], so that their nil policy applies. Keys that belong
// to no direct field of v, such as those of embedded structs, follow
// in sorted order.
func copyFields(out, fields *Object, v reflect.Value) error {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		t := v.Type()
		for i := range t.NumField() {
			sf := t.Field(i)
			name, ok := jsonFieldName(sf)
			if !ok || !fields.Has(name) || out.Has(name) {
				continue
			}
			if opt, ok := v.Field(i).Interface().(OptionalEncodingSupport); ok && opt.IsAbsent() {
				if err := out.Encode(name, opt); err != nil {
					return err
				}
			} else {
				out.Set(name, fields.fields[name])
			}
			delete(fields.fields, name)
		}
	}
	for _, k := range fields.Keys() {
		if raw, ok := fields.fields[k]; ok {
			out.Set(k, raw)
		}
	}
	return nil
}

// jsonFieldName returns the JSON object key of a direct struct field,
// or false if the field is unexported, embedded or skipped.
func jsonFieldName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() || sf.Anonymous {
		return "", false
	}
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, true
}

// Decode decodes a value tagged by [Registry.Encode].
//
// Decode returns a [KeyNotFoundError] if data has no discriminator,
// and an [UnexpectedTypeKeyError] if the discriminator is not
// registered.
func (r *Registry[E]) Decode(data []byte) (E, error) {
	var zero E
	var probe struct {
		Type *string `json:"__type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return zero, err
	}
	if probe.Type == nil {
		return zero, KeyNotFoundError{TypeKey}
	}
	e, ok := r.byKey[*probe.Type]
	if !ok {
		return zero, UnexpectedTypeKeyError{*probe.Type}
	}
	return e.decode(data)
}
