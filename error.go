package existential

import (
	"fmt"
	"reflect"
)

// UnexpectedTypeError is the error returned when a [Registry] is
// asked to encode a value whose dynamic type was not registered.
type UnexpectedTypeError struct {
	// Type is the name of the unregistered type.
	Type string
}

func (e UnexpectedTypeError) Error() string {
	return fmt.Sprintf("unexpected type %s, not in the registry", e.Type)
}

func unexpectedType(v any) error {
	if v == nil {
		return UnexpectedTypeError{"<nil>"}
	}
	return UnexpectedTypeError{reflect.TypeOf(v).String()}
}

// UnexpectedTypeKeyError is the error returned when a [Registry]
// decodes a payload whose type discriminator matches no registered
// type.
type UnexpectedTypeKeyError struct {
	// Key is the discriminator found in the payload.
	Key string
}

func (e UnexpectedTypeKeyError) Error() string {
	return fmt.Sprintf("unexpected type key %q, not in the registry", e.Key)
}

// KeyNotFoundError is the error returned when a required key is
// missing from a JSON object.
type KeyNotFoundError struct {
	Key string
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", e.Key)
}

// EncodingError is the error returned when a value cannot be encoded
// in the shape its container requires.
type EncodingError struct {
	// Type is the name of the type that caused the error.
	Type string
	// Reason is an explanation of what went wrong.
	Reason error
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s: %s", e.Type, e.Reason)
}

func (e EncodingError) Unwrap() error {
	return e.Reason
}

func encodingErr(t reflect.Type, reason string, args ...any) error {
	ts := ""
	if t != nil {
		ts = t.String()
	}
	return EncodingError{ts, fmt.Errorf(reason, args...)}
}
