package existential

import "reflect"

// Sequence is the constraint on the container type of sequence
// wrappers that only need to iterate their elements.
type Sequence[E any] interface {
	~[]E
}

// RangeReplaceableCollection is the constraint on the container type
// of sequence wrappers that decode, and so need to build a container
// by appending elements.
//
// Go slices satisfy both constraints. They are kept distinct so that
// wrapper signatures state which operations they rely on.
type RangeReplaceableCollection[E any] interface {
	~[]E
}

// SequenceOfEquatables is the view of a wrapped sequence that
// [EqualSequences] compares.
type SequenceOfEquatables struct {
	// Type is the static container type of the sequence.
	Type reflect.Type
	// Present is false if the wrapper holds no sequence at all.
	Present bool
	// Elems are the elements of the sequence, in order.
	Elems []any
}

// SequenceOf returns the equality view of a sequence that is always
// present. A nil slice is an empty sequence.
func SequenceOf[T ~[]E, E any](s T) SequenceOfEquatables {
	ret := SequenceOfEquatables{
		Type:    reflect.TypeFor[T](),
		Present: true,
		Elems:   make([]any, 0, len(s)),
	}
	for _, e := range s {
		ret.Elems = append(ret.Elems, e)
	}
	return ret
}

// OptionalSequenceOf returns the equality view of an optional
// sequence. A nil slice is an absent sequence.
func OptionalSequenceOf[T ~[]E, E any](s T) SequenceOfEquatables {
	if s == nil {
		return SequenceOfEquatables{Type: reflect.TypeFor[T]()}
	}
	return SequenceOf[T, E](s)
}
