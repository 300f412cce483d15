package existential

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry[Drink] {
	return NewRegistry(
		Expect("Water", func(v Water) Drink { return v }),
		Expect("Juice", func(v *Juice) Drink { return v }),
	)
}

func TestRegistryRoundTrip(t *testing.T) {
	r := testRegistry()
	assert.Equal(t, []string{"Juice", "Water"}, r.Keys())

	bs, err := r.Encode(Water{250})
	require.NoError(t, err)
	assert.JSONEq(t, `{"__type":"Water","ml":250}`, string(bs))

	got, err := r.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, Water{250}, got)

	bs, err = r.Encode(&Juice{50})
	require.NoError(t, err)
	assert.JSONEq(t, `{"__type":"Juice","ml":50}`, string(bs))

	got, err = r.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, &Juice{50}, got)
}

func TestRegistryClosedWorld(t *testing.T) {
	r := testRegistry()

	_, err := r.Encode(Juice{50})
	var typeErr UnexpectedTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "existential.Juice", typeErr.Type)

	_, err = r.Encode(nil)
	require.ErrorAs(t, err, &typeErr)

	_, err = r.Decode([]byte(`{"__type":"juice","ml":50}`))
	var keyErr UnexpectedTypeKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "juice", keyErr.Key)

	_, err = r.Decode([]byte(`{"ml":50}`))
	var notFound KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, TypeKey, notFound.Key)

	_, err = r.Decode([]byte(`{"__type":`))
	assert.Error(t, err)
}

func TestRegistryNonObject(t *testing.T) {
	r := NewRegistry(Expect("Label", func(v Label) Drink { return v }))
	_, err := r.Encode(Label("gin"))
	var encErr EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "existential.Label", encErr.Type)
}

func TestRegistryEmptyObject(t *testing.T) {
	r := NewRegistry(Expect("Empty", func(v struct{}) any { return v }))
	bs, err := r.Encode(struct{}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"__type":"Empty"}`, string(bs))
}

func TestRegistryDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(
			Expect("Water", func(v Water) Drink { return v }),
			Expect("Water", func(v Juice) Drink { return v }),
		)
	})
	assert.Panics(t, func() {
		NewRegistry(
			Expect("Water", func(v Water) Drink { return v }),
			Expect("Still", func(v Water) Drink { return v }),
		)
	})
}

// Combo is a registered type holding an optional wrapper.
type Combo struct {
	Name string   `json:"name"`
	Side optional `json:"side,omitzero"`
	Note string   `json:"-"`
}

func (c Combo) Volume() float64 { return 0 }

func TestRegistryNestedOptional(t *testing.T) {
	r := NewRegistry(Expect("Combo", func(v Combo) Drink { return v }))

	bs, err := r.Encode(Combo{Name: "lunch", Note: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"__type":"Combo","name":"lunch"}`, string(bs))
	got, err := r.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, Combo{Name: "lunch"}, got)

	bs, err = r.Encode(Combo{Name: "lunch", Side: optional{encodeNil: true}})
	require.NoError(t, err)
	assert.Equal(t, `{"__type":"Combo","name":"lunch","side":null}`, string(bs))

	bs, err = r.Encode(Combo{Name: "lunch", Side: optional{v: &Water{250}}})
	require.NoError(t, err)
	assert.Equal(t, `{"__type":"Combo","name":"lunch","side":{"ml":250}}`, string(bs))
	got, err = r.Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, &Water{250}, got.(Combo).Side.v)
}

// Tagged encodes its own discriminator field.
type Tagged struct {
	Kind string `json:"__type"`
}

func (Tagged) Volume() float64 { return 0 }

func TestRegistryTypeKeyCollision(t *testing.T) {
	r := NewRegistry(Expect("Tagged", func(v Tagged) Drink { return v }))
	_, err := r.Encode(Tagged{Kind: "x"})
	var encErr EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "existential.Tagged", encErr.Type)
}

func TestRegistryEntry(t *testing.T) {
	e := Expect("Juice", func(v *Juice) Drink { return v })
	assert.Equal(t, "Juice", e.Key())
	assert.Equal(t, reflect.TypeFor[*Juice](), e.Type())
}
