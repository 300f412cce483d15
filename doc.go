// Package existential is the runtime support library for wrapper
// types generated by existgen.
//
// Go interface values hide the concrete type they hold. That makes
// them awkward to compare, hash or serialize: == panics on
// uncomparable dynamic types, there is no general hashing primitive,
// and encoding/json cannot decode into an interface without knowing
// which concrete type to allocate.
//
// existgen generates, for an annotated interface, a family of small
// wrapper types that give interface values those capabilities back. A
// declaration like
//
//	//existential:HashableCodableExistential
//	type Drinkable interface {
//	    Milliliters() float64
//	}
//
// produces eight wrappers, one per combination of the mutable,
// optional and sequence variants:
//
//	HashableCodableDrinkable[Coding]
//	HashableCodableMutableDrinkable[Coding]
//	HashableCodableOptionalDrinkable[Coding]
//	HashableCodableRangeReplaceableCollectionOfDrinkable[T, Coding]
//	...
//
// The generated method bodies call into this package.
//
// # Equality
//
// Wrappers with an equality capability implement [EquatableSupport]
// (scalar variants) or [EquatableSequenceSupport] (sequence
// variants). [Equal] and [EqualSequences] compare two wrappers by the
// dynamic type of the wrapped values first, and only then by value, so
// a Beer and a Water holding the same amount are never equal. Values
// are compared with their Equal method if they implement [Equaler],
// with == if their type is comparable, and with [reflect.DeepEqual]
// otherwise.
//
// Sequence equality is ordered. Wrappers over containers whose order
// is not meaningful need a custom comparison.
//
// # Hashing
//
// Hashable wrappers implement [Hashable] by folding the dynamic type
// of each wrapped value into a [Hasher] before the value itself. Two
// wrappers that are equal always produce the same [HashOf].
//
// # Coding
//
// Decoding and encoding of the wrapped interface value is delegated
// to a coding provider, a type parameter that implements
// [DecodingProvider], [EncodingProvider] or [CodingProvider]. The
// provider is used through its zero value, so providers are normally
// empty structs. existgen can generate a provider that tags the JSON
// encoding of each value with its type name, see [Registry].
//
// Optional wrappers encode an absent value as JSON null. When an
// optional wrapper is a field of a keyed [Object], a missing key
// decodes as an absent value, and an absent value is only written as
// an explicit null if the provider's ShouldEncodeNil method asks for
// it.
package existential
