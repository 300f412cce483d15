package existential

import (
	"testing"
)

func TestEqualValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same type and value", Water{5}, Water{5}, true},
		{"same type different value", Water{5}, Water{6}, false},
		{"different types same shape", Water{5}, Juice{5}, false},
		{"both nil", nil, nil, true},
		{"nil left", nil, Water{5}, false},
		{"nil right", Water{5}, nil, false},
		{"equaler", Label("Gin"), Label("gIN"), true},
		{"equaler unequal", Label("Gin"), Label("Rum"), false},
		{"uncomparable equal", Cocktail{[]Drink{Water{1}, Juice{2}}}, Cocktail{[]Drink{Water{1}, Juice{2}}}, true},
		{"uncomparable unequal", Cocktail{[]Drink{Water{1}, Juice{2}}}, Cocktail{[]Drink{Juice{1}, Juice{2}}}, false},
		{"comparable holding uncomparable", Shelf{Cocktail{[]Drink{Water{1}}}}, Shelf{Cocktail{[]Drink{Water{1}}}}, true},
		{"comparable holding uncomparable unequal", Shelf{Cocktail{[]Drink{Water{1}}}}, Shelf{Cocktail{[]Drink{Water{2}}}}, false},
		{"pointer identity", ptr(Water{1}), ptr(Water{1}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EqualValues(tc.a, tc.b); got != tc.want {
				t.Errorf("EqualValues(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := EqualValues(tc.b, tc.a); got != tc.want {
				t.Errorf("EqualValues(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(box{Water{300}}, box{Water{300}}) {
		t.Error("wrappers of equal waters are unequal")
	}
	if Equal(box{Water{5}}, box{Juice{5}}) {
		t.Error("wrappers of water and juice are equal")
	}
	if !Equal(box{}, box{}) {
		t.Error("absent wrappers are unequal")
	}
	if Equal(box{}, box{Water{5}}) || Equal(box{Water{5}}, box{}) {
		t.Error("absent wrapper equal to present wrapper")
	}
	if !Equal(nil, box{}) {
		t.Error("nil EquatableSupport unequal to absent wrapper")
	}
}

func TestEqualSequences(t *testing.T) {
	water, juice := Water{250}, Juice{50}

	tests := []struct {
		name string
		a, b EquatableSequenceSupport
		want bool
	}{
		{
			"same order",
			seq[[]Drink]{v: []Drink{water, juice}},
			seq[[]Drink]{v: []Drink{water, juice}},
			true,
		},
		{
			"reversed",
			seq[[]Drink]{v: []Drink{water, juice}},
			seq[[]Drink]{v: []Drink{juice, water}},
			false,
		},
		{
			"different lengths",
			seq[[]Drink]{v: []Drink{water, juice}},
			seq[[]Drink]{v: []Drink{water}},
			false,
		},
		{
			"different container types",
			seq[[]Drink]{v: []Drink{water}},
			seq[Drinks]{v: Drinks{water}},
			false,
		},
		{
			"both absent",
			seq[[]Drink]{optional: true},
			seq[[]Drink]{optional: true},
			true,
		},
		{
			"absent and empty",
			seq[[]Drink]{optional: true},
			seq[[]Drink]{v: []Drink{}, optional: true},
			false,
		},
		{
			"nil non-optional is empty",
			seq[[]Drink]{},
			seq[[]Drink]{v: []Drink{}, optional: true},
			true,
		},
		{
			"optional and non-optional",
			seq[[]Drink]{v: []Drink{juice}, optional: true},
			seq[[]Drink]{v: []Drink{juice}},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EqualSequences(tc.a, tc.b); got != tc.want {
				t.Errorf("EqualSequences(a, b) = %v, want %v", got, tc.want)
			}
			if got := EqualSequences(tc.b, tc.a); got != tc.want {
				t.Errorf("EqualSequences(b, a) = %v, want %v", got, tc.want)
			}
		})
	}
}
