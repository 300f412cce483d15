// Package drinkable is an example client of existgen. The wrappers in
// drinkable_existential.go are generated from the directives on
// [Drinkable].
package drinkable

//go:generate go run github.com/danderson/existential/cmd/existgen generate drinkable.go

// Drinkable is anything that can be poured into a glass.
//
//existential:EquatableExistential
//existential:HashableExistential
//existential:DecodableExistential
//existential:EncodableExistential
//existential:CodableExistential
//existential:EquatableDecodableExistential
//existential:EquatableEncodableExistential
//existential:EquatableCodableExistential
//existential:HashableDecodableExistential
//existential:HashableEncodableExistential
//existential:HashableCodableExistential
//existential:SimpleCodingProviding expectedTypes=Water,Beer,*Espresso
type Drinkable interface {
	Milliliters() float64
}

type Water struct {
	Amount float64 `json:"milliliters"`
}

func (w Water) Milliliters() float64 { return w.Amount }

type Beer struct {
	Amount float64 `json:"milliliters"`
}

func (b Beer) Milliliters() float64 { return b.Amount }

// EspressoShot is the volume of one shot of espresso.
const EspressoShot = 30

// Espresso is a number of espresso shots. Espressos are compared by
// value, not by pointer.
type Espresso struct {
	Shots int `json:"shots"`
}

func (e *Espresso) Milliliters() float64 {
	if e == nil {
		return 0
	}
	return float64(e.Shots * EspressoShot)
}

func (e *Espresso) Equal(other any) bool {
	o, ok := other.(*Espresso)
	if !ok || (e == nil) != (o == nil) {
		return false
	}
	return e == nil || *e == *o
}

// Drinks is a list of drinks.
type Drinks []Drinkable
