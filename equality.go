package existential

import (
	"reflect"
	"slices"
)

// EquatableSupport is implemented by scalar wrappers with an equality
// capability.
type EquatableSupport interface {
	// EquatableValue returns the wrapped interface value, or nil if
	// the wrapper holds no value.
	EquatableValue() any
}

// EquatableSequenceSupport is implemented by sequence wrappers with
// an equality capability.
type EquatableSequenceSupport interface {
	EquatableSequence() SequenceOfEquatables
}

// Equaler is implemented by values that define their own notion of
// equality. Equal is only called with an argument of the same dynamic
// type as the receiver.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether two scalar wrappers hold equal values.
//
// Two wrappers are equal if both hold no value, or if both hold values
// of the same dynamic type that are equal according to
// [EqualValues]. A nil EquatableSupport holds no value.
func Equal(a, b EquatableSupport) bool {
	return EqualValues(equatableValue(a), equatableValue(b))
}

func equatableValue(s EquatableSupport) any {
	if s == nil {
		return nil
	}
	return s.EquatableValue()
}

// EqualSequences reports whether two sequence wrappers hold equal
// sequences.
//
// Two sequences are equal if their container types are identical, and
// either both are absent or both are present with the same length and
// pairwise equal elements in the same order.
func EqualSequences(a, b EquatableSequenceSupport) bool {
	sa, sb := equatableSequence(a), equatableSequence(b)
	if sa.Type != sb.Type {
		return false
	}
	if !sa.Present || !sb.Present {
		return sa.Present == sb.Present
	}
	return slices.EqualFunc(sa.Elems, sb.Elems, EqualValues)
}

func equatableSequence(s EquatableSequenceSupport) SequenceOfEquatables {
	if s == nil {
		return SequenceOfEquatables{}
	}
	return s.EquatableSequence()
}

// EqualValues reports whether a and b are equal, taking their dynamic
// types into account.
//
// Values of different dynamic types are never equal. Otherwise, a's
// Equal method is used if it implements [Equaler], then == if the type
// is comparable, then [reflect.DeepEqual].
func EqualValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if t.Comparable() {
		return comparableEqual(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// comparableEqual is a == b, falling back to reflect.DeepEqual if a
// comparable type turns out to hold uncomparable values, such as a
// struct with an interface field holding a slice.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}
