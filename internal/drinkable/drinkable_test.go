package drinkable

import (
	"errors"
	"slices"
	"testing"

	"github.com/danderson/existential"
	"github.com/danderson/existential/existentialtest"
)

type C = DrinkableSimpleCoding

var (
	glassOfWater   Drinkable = Water{Amount: 250}
	pintOfBeer     Drinkable = Beer{Amount: 568}
	doubleEspresso Drinkable = &Espresso{Shots: 2}
)

func scalarWrappers(d Drinkable) []existential.EquatableSupport {
	return []existential.EquatableSupport{
		NewEquatableDrinkable(d),
		NewEquatableMutableDrinkable(d),
		NewEquatableOptionalDrinkable(d),
		NewEquatableMutableOptionalDrinkable(d),
		NewHashableDrinkable(d),
		NewHashableMutableDrinkable(d),
		NewHashableOptionalDrinkable(d),
		NewHashableMutableOptionalDrinkable(d),
		NewEquatableDecodableDrinkable[C](d),
		NewEquatableDecodableMutableDrinkable[C](d),
		NewEquatableDecodableOptionalDrinkable[C](d),
		NewEquatableDecodableMutableOptionalDrinkable[C](d),
		NewEquatableEncodableDrinkable[C](d),
		NewEquatableEncodableMutableDrinkable[C](d),
		NewEquatableEncodableOptionalDrinkable[C](d),
		NewEquatableEncodableMutableOptionalDrinkable[C](d),
		NewEquatableCodableDrinkable[C](d),
		NewEquatableCodableMutableDrinkable[C](d),
		NewEquatableCodableOptionalDrinkable[C](d),
		NewEquatableCodableMutableOptionalDrinkable[C](d),
		NewHashableDecodableDrinkable[C](d),
		NewHashableDecodableMutableDrinkable[C](d),
		NewHashableDecodableOptionalDrinkable[C](d),
		NewHashableDecodableMutableOptionalDrinkable[C](d),
		NewHashableEncodableDrinkable[C](d),
		NewHashableEncodableMutableDrinkable[C](d),
		NewHashableEncodableOptionalDrinkable[C](d),
		NewHashableEncodableMutableOptionalDrinkable[C](d),
		NewHashableCodableDrinkable[C](d),
		NewHashableCodableMutableDrinkable[C](d),
		NewHashableCodableOptionalDrinkable[C](d),
		NewHashableCodableMutableOptionalDrinkable[C](d),
	}
}

func optionalScalarWrappers(d Drinkable) []existential.EquatableSupport {
	return []existential.EquatableSupport{
		NewEquatableOptionalDrinkable(d),
		NewEquatableMutableOptionalDrinkable(d),
		NewHashableOptionalDrinkable(d),
		NewHashableMutableOptionalDrinkable(d),
		NewEquatableDecodableOptionalDrinkable[C](d),
		NewEquatableDecodableMutableOptionalDrinkable[C](d),
		NewEquatableEncodableOptionalDrinkable[C](d),
		NewEquatableEncodableMutableOptionalDrinkable[C](d),
		NewEquatableCodableOptionalDrinkable[C](d),
		NewEquatableCodableMutableOptionalDrinkable[C](d),
		NewHashableDecodableOptionalDrinkable[C](d),
		NewHashableDecodableMutableOptionalDrinkable[C](d),
		NewHashableEncodableOptionalDrinkable[C](d),
		NewHashableEncodableMutableOptionalDrinkable[C](d),
		NewHashableCodableOptionalDrinkable[C](d),
		NewHashableCodableMutableOptionalDrinkable[C](d),
	}
}

func hashableScalarWrappers(d Drinkable) []existential.Hashable {
	return []existential.Hashable{
		NewHashableDrinkable(d),
		NewHashableMutableDrinkable(d),
		NewHashableOptionalDrinkable(d),
		NewHashableMutableOptionalDrinkable(d),
		NewHashableDecodableDrinkable[C](d),
		NewHashableDecodableMutableDrinkable[C](d),
		NewHashableDecodableOptionalDrinkable[C](d),
		NewHashableDecodableMutableOptionalDrinkable[C](d),
		NewHashableEncodableDrinkable[C](d),
		NewHashableEncodableMutableDrinkable[C](d),
		NewHashableEncodableOptionalDrinkable[C](d),
		NewHashableEncodableMutableOptionalDrinkable[C](d),
		NewHashableCodableDrinkable[C](d),
		NewHashableCodableMutableDrinkable[C](d),
		NewHashableCodableOptionalDrinkable[C](d),
		NewHashableCodableMutableOptionalDrinkable[C](d),
	}
}

func sequenceWrappers(ds Drinks) []existential.EquatableSequenceSupport {
	return []existential.EquatableSequenceSupport{
		NewEquatableSequenceOfDrinkable[Drinks](ds),
		NewEquatableMutableSequenceOfDrinkable[Drinks](ds),
		NewEquatableOptionalSequenceOfDrinkable[Drinks](ds),
		NewEquatableMutableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableSequenceOfDrinkable[Drinks](ds),
		NewHashableMutableSequenceOfDrinkable[Drinks](ds),
		NewHashableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableMutableOptionalSequenceOfDrinkable[Drinks](ds),
		NewEquatableDecodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableDecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableMutableSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableEncodableSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableMutableSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
	}
}

func optionalSequenceWrappers(ds Drinks) []existential.EquatableSequenceSupport {
	return []existential.EquatableSequenceSupport{
		NewEquatableOptionalSequenceOfDrinkable[Drinks](ds),
		NewEquatableMutableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableMutableOptionalSequenceOfDrinkable[Drinks](ds),
		NewEquatableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewEquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewEquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
	}
}

func hashableSequenceWrappers(ds Drinks) []existential.Hashable {
	return []existential.Hashable{
		NewHashableSequenceOfDrinkable[Drinks](ds),
		NewHashableMutableSequenceOfDrinkable[Drinks](ds),
		NewHashableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableMutableOptionalSequenceOfDrinkable[Drinks](ds),
		NewHashableDecodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableEncodableSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableMutableSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds),
		NewHashableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
		NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds),
	}
}

func checkScalar[D any, PD interface {
	*D
	existential.Decodable
	WrappedValue() Drinkable
}](t *testing.T, enc existential.Encodable, want Drinkable) {
	t.Helper()
	var dst D
	bs := existentialtest.RoundTrip(t, enc, PD(&dst))
	if got := PD(&dst).WrappedValue(); !existential.EqualValues(got, want) {
		t.Errorf("%T decoded %s as %v, want %v", dst, bs, got, want)
	}
}

func equalDrinks(a, b Drinks) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.EqualFunc(a, b, func(x, y Drinkable) bool {
		return existential.EqualValues(x, y)
	})
}

func checkSequence[D any, PD interface {
	*D
	existential.Decodable
	WrappedValue() Drinks
}](t *testing.T, enc existential.Encodable, want Drinks) {
	t.Helper()
	var dst D
	bs := existentialtest.RoundTrip(t, enc, PD(&dst))
	if got := PD(&dst).WrappedValue(); !equalDrinks(got, want) {
		t.Errorf("%T decoded %s as %v, want %v", dst, bs, got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []Drinkable{glassOfWater, pintOfBeer, doubleEspresso} {
		checkScalar[CodableDrinkable[C]](t, NewCodableDrinkable[C](d), d)
		checkScalar[EquatableCodableDrinkable[C]](t, NewEquatableCodableDrinkable[C](d), d)
		checkScalar[HashableCodableDrinkable[C]](t, NewHashableCodableDrinkable[C](d), d)
		checkScalar[DecodableDrinkable[C]](t, NewEncodableDrinkable[C](d), d)
		checkScalar[EquatableDecodableDrinkable[C]](t, NewEquatableEncodableDrinkable[C](d), d)
		checkScalar[HashableDecodableDrinkable[C]](t, NewHashableEncodableDrinkable[C](d), d)
		checkScalar[CodableMutableDrinkable[C]](t, NewCodableMutableDrinkable[C](d), d)
		checkScalar[EquatableCodableMutableDrinkable[C]](t, NewEquatableCodableMutableDrinkable[C](d), d)
		checkScalar[HashableCodableMutableDrinkable[C]](t, NewHashableCodableMutableDrinkable[C](d), d)
		checkScalar[DecodableMutableDrinkable[C]](t, NewEncodableMutableDrinkable[C](d), d)
		checkScalar[EquatableDecodableMutableDrinkable[C]](t, NewEquatableEncodableMutableDrinkable[C](d), d)
		checkScalar[HashableDecodableMutableDrinkable[C]](t, NewHashableEncodableMutableDrinkable[C](d), d)
		checkScalar[CodableOptionalDrinkable[C]](t, NewCodableOptionalDrinkable[C](d), d)
		checkScalar[EquatableCodableOptionalDrinkable[C]](t, NewEquatableCodableOptionalDrinkable[C](d), d)
		checkScalar[HashableCodableOptionalDrinkable[C]](t, NewHashableCodableOptionalDrinkable[C](d), d)
		checkScalar[DecodableOptionalDrinkable[C]](t, NewEncodableOptionalDrinkable[C](d), d)
		checkScalar[EquatableDecodableOptionalDrinkable[C]](t, NewEquatableEncodableOptionalDrinkable[C](d), d)
		checkScalar[HashableDecodableOptionalDrinkable[C]](t, NewHashableEncodableOptionalDrinkable[C](d), d)
		checkScalar[CodableMutableOptionalDrinkable[C]](t, NewCodableMutableOptionalDrinkable[C](d), d)
		checkScalar[EquatableCodableMutableOptionalDrinkable[C]](t, NewEquatableCodableMutableOptionalDrinkable[C](d), d)
		checkScalar[HashableCodableMutableOptionalDrinkable[C]](t, NewHashableCodableMutableOptionalDrinkable[C](d), d)
		checkScalar[DecodableMutableOptionalDrinkable[C]](t, NewEncodableMutableOptionalDrinkable[C](d), d)
		checkScalar[EquatableDecodableMutableOptionalDrinkable[C]](t, NewEquatableEncodableMutableOptionalDrinkable[C](d), d)
		checkScalar[HashableDecodableMutableOptionalDrinkable[C]](t, NewHashableEncodableMutableOptionalDrinkable[C](d), d)
	}

	for _, ds := range []Drinks{{glassOfWater, doubleEspresso}, {pintOfBeer}, {}} {
		checkSequence[CodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[DecodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableDecodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableDecodableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[CodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[DecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableMutableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableDecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableMutableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableDecodableMutableRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableMutableSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[CodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[DecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[CodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](ds), ds)
		checkSequence[DecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[EquatableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
		checkSequence[HashableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](ds), ds)
	}

	// Absent values.
	checkScalar[CodableOptionalDrinkable[C]](t, NewCodableOptionalDrinkable[C](nil), nil)
	checkScalar[EquatableCodableOptionalDrinkable[C]](t, NewEquatableCodableOptionalDrinkable[C](nil), nil)
	checkScalar[HashableCodableOptionalDrinkable[C]](t, NewHashableCodableOptionalDrinkable[C](nil), nil)
	checkScalar[DecodableOptionalDrinkable[C]](t, NewEncodableOptionalDrinkable[C](nil), nil)
	checkScalar[EquatableDecodableOptionalDrinkable[C]](t, NewEquatableEncodableOptionalDrinkable[C](nil), nil)
	checkScalar[HashableDecodableOptionalDrinkable[C]](t, NewHashableEncodableOptionalDrinkable[C](nil), nil)
	checkScalar[CodableMutableOptionalDrinkable[C]](t, NewCodableMutableOptionalDrinkable[C](nil), nil)
	checkScalar[EquatableCodableMutableOptionalDrinkable[C]](t, NewEquatableCodableMutableOptionalDrinkable[C](nil), nil)
	checkScalar[HashableCodableMutableOptionalDrinkable[C]](t, NewHashableCodableMutableOptionalDrinkable[C](nil), nil)
	checkScalar[DecodableMutableOptionalDrinkable[C]](t, NewEncodableMutableOptionalDrinkable[C](nil), nil)
	checkScalar[EquatableDecodableMutableOptionalDrinkable[C]](t, NewEquatableEncodableMutableOptionalDrinkable[C](nil), nil)
	checkScalar[HashableDecodableMutableOptionalDrinkable[C]](t, NewHashableEncodableMutableOptionalDrinkable[C](nil), nil)
	checkSequence[CodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[EquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[HashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[DecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[EquatableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[HashableDecodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[CodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[EquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[HashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[DecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[EquatableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewEquatableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
	checkSequence[HashableDecodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]](t, NewHashableEncodableMutableOptionalSequenceOfDrinkable[Drinks, C](Drinks(nil)), Drinks(nil))
}

func TestEqualityProduct(t *testing.T) {
	// The same value under every wrapper shape.
	if n := existentialtest.EqualityProduct(t, scalarWrappers(pintOfBeer), scalarWrappers(pintOfBeer), true); n != 32*32 {
		t.Errorf("checked %d pairs, want %d", n, 32*32)
	}
	if n := existentialtest.HashProduct(t, hashableScalarWrappers(pintOfBeer), hashableScalarWrappers(pintOfBeer)); n != 16*16 {
		t.Errorf("checked %d pairs, want %d", n, 16*16)
	}
	if n := existentialtest.HashProduct(t, hashableScalarWrappers(doubleEspresso), hashableScalarWrappers(&Espresso{Shots: 2})); n != 16*16 {
		t.Errorf("checked %d pairs, want %d", n, 16*16)
	}

	// Same volume, different dynamic types.
	existentialtest.EqualityProduct(t, scalarWrappers(Beer{Amount: 5}), scalarWrappers(Water{Amount: 5}), false)
	existentialtest.EqualityProduct(t, scalarWrappers(Beer{Amount: 5}), scalarWrappers(Beer{Amount: 6}), false)
}

func TestAbsentEquality(t *testing.T) {
	absent := optionalScalarWrappers(nil)
	if n := existentialtest.EqualityProduct(t, absent, absent, true); n != 16*16 {
		t.Errorf("checked %d pairs, want %d", n, 16*16)
	}
	existentialtest.EqualityProduct(t, absent, scalarWrappers(glassOfWater), false)
	existentialtest.EqualityProduct(t, absent, optionalScalarWrappers(glassOfWater), false)

	var absentHashes []existential.Hashable
	for _, w := range absent {
		if h, ok := w.(existential.Hashable); ok {
			absentHashes = append(absentHashes, h)
		}
	}
	if n := existentialtest.HashProduct(t, absentHashes, absentHashes); n != 8*8 {
		t.Errorf("checked %d pairs, want %d", n, 8*8)
	}

	absentSeqs := optionalSequenceWrappers(nil)
	existentialtest.SequenceEqualityProduct(t, absentSeqs, absentSeqs, true)
	existentialtest.SequenceEqualityProduct(t, absentSeqs, sequenceWrappers(Drinks{}), false)
	existentialtest.SequenceEqualityProduct(t, absentSeqs, optionalSequenceWrappers(Drinks{}), false)
}

func TestSequenceEquality(t *testing.T) {
	drinks := Drinks{glassOfWater, doubleEspresso}
	same := Drinks{Water{Amount: 250}, &Espresso{Shots: 2}}
	reversed := Drinks{doubleEspresso, glassOfWater}

	if n := existentialtest.SequenceEqualityProduct(t, sequenceWrappers(drinks), sequenceWrappers(same), true); n != 32*32 {
		t.Errorf("checked %d pairs, want %d", n, 32*32)
	}
	if n := existentialtest.HashProduct(t, hashableSequenceWrappers(drinks), hashableSequenceWrappers(same)); n != 16*16 {
		t.Errorf("checked %d pairs, want %d", n, 16*16)
	}
	existentialtest.SequenceEqualityProduct(t, sequenceWrappers(drinks), sequenceWrappers(reversed), false)
	existentialtest.SequenceEqualityProduct(t, sequenceWrappers(drinks), sequenceWrappers(drinks[:1]), false)

	// A nil slice is an empty sequence, unless the wrapper is optional.
	existentialtest.SequenceEqualityProduct(t,
		[]existential.EquatableSequenceSupport{NewEquatableSequenceOfDrinkable(Drinks(nil))},
		[]existential.EquatableSequenceSupport{NewEquatableSequenceOfDrinkable(Drinks{})},
		true)

	// Sequences of different container types are never equal.
	other := NewEquatableSequenceOfDrinkable([]Drinkable{glassOfWater, doubleEspresso})
	existentialtest.SequenceEqualityProduct(t, sequenceWrappers(drinks), []existential.EquatableSequenceSupport{other}, false)
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		in   existential.Encodable
		want string
	}{
		{NewCodableDrinkable[C](glassOfWater), `{"__type":"Water","milliliters":250}`},
		{NewCodableDrinkable[C](doubleEspresso), `{"__type":"Espresso","shots":2}`},
		{NewEncodableOptionalDrinkable[C](nil), `null`},
		{NewHashableEncodableSequenceOfDrinkable[Drinks, C](Drinks{pintOfBeer, glassOfWater}), `[{"__type":"Beer","milliliters":568},{"__type":"Water","milliliters":250}]`},
		{NewHashableEncodableSequenceOfDrinkable[Drinks, C](nil), `[]`},
		{NewEncodableOptionalSequenceOfDrinkable[Drinks, C](nil), `null`},
	}
	for _, tc := range tests {
		got, err := tc.in.MarshalJSON()
		if err != nil {
			t.Errorf("%T.MarshalJSON(): %v", tc.in, err)
			continue
		}
		if string(got) != tc.want {
			t.Errorf("%T.MarshalJSON() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

type Latte struct{}

func (Latte) Milliliters() float64 { return 200 }

func TestRegistryClosedWorld(t *testing.T) {
	_, err := NewCodableDrinkable[C](Latte{}).MarshalJSON()
	var typeErr existential.UnexpectedTypeError
	if !errors.As(err, &typeErr) {
		t.Errorf("encoding unregistered type: got err %v, want UnexpectedTypeError", err)
	}

	var w CodableDrinkable[C]
	err = w.UnmarshalJSON([]byte(`{"__type":"espresso","milliliters":50}`))
	var keyErr existential.UnexpectedTypeKeyError
	if !errors.As(err, &keyErr) || keyErr.Key != "espresso" {
		t.Errorf("decoding unknown type key: got err %v, want UnexpectedTypeKeyError(espresso)", err)
	}

	var seq CodableRangeReplaceableCollectionOfDrinkable[Drinks, C]
	err = seq.UnmarshalJSON([]byte(`[{"__type":"Water","milliliters":1},{"__type":"Latte"}]`))
	if !errors.As(err, &keyErr) || keyErr.Key != "Latte" {
		t.Errorf("decoding sequence with unknown type key: got err %v, want UnexpectedTypeKeyError(Latte)", err)
	}
}

func TestMalformedOptional(t *testing.T) {
	for _, in := range []string{`nul`, `{"__type":`, `[null`} {
		var w CodableOptionalDrinkable[C]
		if err := w.UnmarshalJSON([]byte(in)); err == nil {
			t.Errorf("decoding %q succeeded, want error", in)
		}
		var s CodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]
		if err := s.UnmarshalJSON([]byte(in)); err == nil {
			t.Errorf("decoding sequence %q succeeded, want error", in)
		}
	}

	var w CodableMutableOptionalDrinkable[C]
	w.SetWrappedValue(pintOfBeer)
	if err := w.UnmarshalJSON([]byte(" null\n")); err != nil {
		t.Fatalf("decoding null: %v", err)
	}
	if w.WrappedValue() != nil {
		t.Errorf("decoding null left %v, want absent", w.WrappedValue())
	}
}

// explicitNulls is a provider that asks for absent values to be
// written as explicit nulls.
type explicitNulls struct {
	DrinkableSimpleCoding
}

func (explicitNulls) ShouldEncodeNil() bool { return true }

type order struct {
	Main   HashableCodableDrinkable[C]
	Side   HashableCodableOptionalDrinkable[C]
	Extras CodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]
}

func (o order) encode(t *testing.T) string {
	t.Helper()
	obj := existential.NewObject()
	for _, f := range []struct {
		key string
		val any
	}{{"main", o.Main}, {"side", o.Side}, {"extras", o.Extras}} {
		if err := obj.Encode(f.key, f.val); err != nil {
			t.Fatalf("encoding %s: %v", f.key, err)
		}
	}
	bs, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding order: %v", err)
	}
	return string(bs)
}

func decodeOrder(t *testing.T, s string) order {
	t.Helper()
	obj, err := existential.DecodeObject([]byte(s))
	if err != nil {
		t.Fatalf("decoding %s: %v", s, err)
	}
	var ret order
	ret.Side.wrappedValue = pintOfBeer
	ret.Extras.wrappedValue = Drinks{pintOfBeer}
	if err := obj.Decode("main", &ret.Main); err != nil {
		t.Fatalf("decoding main: %v", err)
	}
	if err := obj.Decode("side", &ret.Side); err != nil {
		t.Fatalf("decoding side: %v", err)
	}
	if err := obj.Decode("extras", &ret.Extras); err != nil {
		t.Fatalf("decoding extras: %v", err)
	}
	return ret
}

func TestNilPolicy(t *testing.T) {
	o := order{Main: NewHashableCodableDrinkable[C](glassOfWater)}

	got := o.encode(t)
	want := `{"main":{"__type":"Water","milliliters":250}}`
	if got != want {
		t.Errorf("absent optionals encoded as %s, want %s", got, want)
	}
	back := decodeOrder(t, got)
	if !back.Main.Equal(o.Main) || back.Side.WrappedValue() != nil || back.Extras.WrappedValue() != nil {
		t.Errorf("missing keys decoded as %+v, want absent values", back)
	}

	o.Side = NewHashableCodableOptionalDrinkable[C](doubleEspresso)
	o.Extras = NewCodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C](Drinks{})
	got = o.encode(t)
	want = `{"main":{"__type":"Water","milliliters":250},"side":{"__type":"Espresso","shots":2},"extras":[]}`
	if got != want {
		t.Errorf("present optionals encoded as %s, want %s", got, want)
	}
	back = decodeOrder(t, got)
	if !back.Side.Equal(o.Side) || back.Extras.WrappedValue() == nil || len(back.Extras.WrappedValue()) != 0 {
		t.Errorf("present optionals decoded as %+v", back)
	}

	obj, err := existential.DecodeObject([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	var main HashableCodableDrinkable[C]
	var notFound existential.KeyNotFoundError
	if err := obj.Decode("main", &main); !errors.As(err, &notFound) {
		t.Errorf("decoding missing required key: got err %v, want KeyNotFoundError", err)
	}
}

func TestExplicitNulls(t *testing.T) {
	side := NewHashableCodableOptionalDrinkable[explicitNulls](nil)
	if side.IsZero() || !side.ShouldEncodeNil() {
		t.Errorf("absent wrapper with explicit nulls: IsZero=%v ShouldEncodeNil=%v", side.IsZero(), side.ShouldEncodeNil())
	}
	if omitted := NewHashableCodableOptionalDrinkable[C](nil); !omitted.IsZero() {
		t.Error("absent wrapper without explicit nulls is not zero")
	}

	obj := existential.NewObject()
	if err := obj.Encode("side", side); err != nil {
		t.Fatal(err)
	}
	bs, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"side":null}`; string(bs) != want {
		t.Errorf("absent wrapper encoded as %s, want %s", bs, want)
	}

	back, err := existential.DecodeObject(bs)
	if err != nil {
		t.Fatal(err)
	}
	decoded := NewHashableCodableOptionalDrinkable[explicitNulls](glassOfWater)
	if err := back.Decode("side", &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(side) || existential.HashOf(decoded) != existential.HashOf(side) {
		t.Errorf("explicit null decoded as %v, want absent", decoded.WrappedValue())
	}

	// Explicit nulls round trip through every optional codable shape.
	checkScalar[CodableOptionalDrinkable[explicitNulls]](t, NewCodableOptionalDrinkable[explicitNulls](nil), nil)
	checkSequence[HashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, explicitNulls]](t,
		NewHashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, explicitNulls](nil), nil)
}

// meal is a value encoded by a registry, holding an optional wrapper.
type meal struct {
	Side HashableCodableOptionalDrinkable[C] `json:"side,omitzero"`
}

type loudMeal struct {
	Side HashableCodableOptionalDrinkable[explicitNulls] `json:"side,omitzero"`
}

func TestNestedNilPolicy(t *testing.T) {
	meals := existential.NewRegistry(
		existential.Expect("meal", func(v meal) any { return v }),
		existential.Expect("loudMeal", func(v loudMeal) any { return v }),
	)
	tests := []struct {
		in   any
		want string
	}{
		{meal{}, `{"__type":"meal"}`},
		{loudMeal{}, `{"__type":"loudMeal","side":null}`},
		{meal{NewHashableCodableOptionalDrinkable[C](doubleEspresso)}, `{"__type":"meal","side":{"__type":"Espresso","shots":2}}`},
	}
	for _, tc := range tests {
		bs, err := meals.Encode(tc.in)
		if err != nil {
			t.Errorf("Encode(%T): %v", tc.in, err)
			continue
		}
		if string(bs) != tc.want {
			t.Errorf("Encode(%T) = %s, want %s", tc.in, bs, tc.want)
		}
		back, err := meals.Decode(bs)
		if err != nil {
			t.Errorf("Decode(%s): %v", bs, err)
			continue
		}
		switch m := back.(type) {
		case meal:
			if !m.Side.Equal(tc.in.(meal).Side) {
				t.Errorf("Decode(%s) side = %v, want %v", bs, m.Side.WrappedValue(), tc.in.(meal).Side.WrappedValue())
			}
		case loudMeal:
			if m.Side.WrappedValue() != nil {
				t.Errorf("Decode(%s) side = %v, want absent", bs, m.Side.WrappedValue())
			}
		default:
			t.Errorf("Decode(%s) = %T", bs, back)
		}
	}
}

func TestSequenceRejectsNull(t *testing.T) {
	var s CodableRangeReplaceableCollectionOfDrinkable[Drinks, C]
	if err := s.UnmarshalJSON([]byte(`null`)); err == nil {
		t.Errorf("decoding null into a required sequence succeeded with %v", s.WrappedValue())
	}
	var opt CodableOptionalRangeReplaceableCollectionOfDrinkable[Drinks, C]
	if err := opt.UnmarshalJSON([]byte(`null`)); err != nil || opt.WrappedValue() != nil {
		t.Errorf("decoding null into an optional sequence = %v, %v, want absent", opt.WrappedValue(), err)
	}
}
