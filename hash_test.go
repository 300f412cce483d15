package existential

import (
	"math"
	"testing"
)

func hashOf(f func(h *Hasher)) uint64 {
	var h Hasher
	f(&h)
	return h.Sum64()
}

func combined(v any) uint64 {
	return hashOf(func(h *Hasher) {
		h.CombineTypeOf(v)
		h.Combine(v)
	})
}

func TestHashMatchesEquality(t *testing.T) {
	m1 := map[string]int{}
	m2 := map[string]int{}
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		m1[k] = i
	}
	for i, k := range []string{"e", "d", "c", "b", "a"} {
		m2[k] = 4 - i
	}

	equalPairs := []struct {
		name string
		a, b any
	}{
		{"struct", Water{5}, Water{5}},
		{"negative zero", Water{math.Copysign(0, -1)}, Water{0}},
		{"hashable", Label("Gin"), Label("GIN")},
		{"uncomparable", Cocktail{[]Drink{Water{1}, Juice{2}}}, Cocktail{[]Drink{Water{1}, Juice{2}}}},
		{"map order", m1, m2},
		{"nil", nil, nil},
	}
	for _, tc := range equalPairs {
		t.Run(tc.name, func(t *testing.T) {
			if !EqualValues(tc.a, tc.b) {
				t.Fatalf("test values are not equal")
			}
			if ha, hb := combined(tc.a), combined(tc.b); ha != hb {
				t.Errorf("hash(%v) = %x, hash(%v) = %x, want equal", tc.a, ha, tc.b, hb)
			}
		})
	}
}

func TestHashDiscriminatesTypes(t *testing.T) {
	if combined(Water{5}) == combined(Juice{5}) {
		t.Error("Water and Juice of the same volume hash alike")
	}
	if combined(Water{5}) == combined(Water{6}) {
		t.Error("different waters hash alike")
	}
	if combined(Cocktail{[]Drink{Water{1}, Juice{2}}}) == combined(Cocktail{[]Drink{Juice{1}, Water{2}}}) {
		t.Error("cocktails with swapped part types hash alike")
	}
}

func TestHashAbsent(t *testing.T) {
	nilInterface := hashOf(func(h *Hasher) {
		h.CombineTypeOf(nil)
		h.Combine(nil)
	})
	absentDrink := hashOf(CombineAbsent[Drink])
	absentAny := hashOf(CombineAbsent[any])
	if nilInterface != absentDrink || absentDrink != absentAny {
		t.Errorf("absent interface hashes differ: nil=%x, Drink=%x, any=%x", nilInterface, absentDrink, absentAny)
	}

	absentSlice := hashOf(CombineAbsent[[]Drink])
	absentDrinks := hashOf(CombineAbsent[Drinks])
	if absentSlice == absentDrinks {
		t.Error("absent sequences of different container types hash alike")
	}
	if absentSlice == hashOf(CombineType[[]Drink]) {
		t.Error("absent sequence hashes like an empty sequence")
	}
}

func TestHashCycle(t *testing.T) {
	a := &Tree{V: 1}
	a.Left = a
	a.Right = &Tree{V: 2, Left: a}
	// Must terminate.
	combined(a)
}

func TestHashOf(t *testing.T) {
	if HashOf(Label("x")) != HashOf(Label("X")) {
		t.Error("HashOf ignores the Hash method")
	}
	if NewHasher().Sum64() != hashOf(func(*Hasher) {}) {
		t.Error("zero Hasher differs from NewHasher")
	}
}
