package existential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectOmitsAbsent(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Encode("name", "glass"))
	require.NoError(t, obj.Encode("drink", optional{}))
	bs, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"glass"}`, string(bs))

	dec, err := DecodeObject(bs)
	require.NoError(t, err)
	assert.False(t, dec.Has("drink"))
	got := optional{v: &Water{1}}
	require.NoError(t, dec.Decode("drink", &got))
	assert.Nil(t, got.v)
}

func TestObjectEncodesNil(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Encode("drink", optional{encodeNil: true}))
	bs, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"drink":null}`, string(bs))

	dec, err := DecodeObject(bs)
	require.NoError(t, err)
	assert.True(t, dec.Has("drink"))
	got := optional{v: &Water{1}}
	require.NoError(t, dec.Decode("drink", &got))
	assert.Nil(t, got.v)
}

func TestObjectPresent(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Encode("drink", optional{v: &Water{250}}))
	require.NoError(t, obj.Encode("count", 2))
	assert.Equal(t, []string{"drink", "count"}, obj.Keys())
	bs, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"drink":{"ml":250},"count":2}`, string(bs))

	dec, err := DecodeObject(bs)
	require.NoError(t, err)
	var got optional
	require.NoError(t, dec.Decode("drink", &got))
	assert.Equal(t, &Water{250}, got.v)
	var count int
	require.NoError(t, dec.Decode("count", &count))
	assert.Equal(t, 2, count)
}

func TestObjectMissingRequired(t *testing.T) {
	dec, err := DecodeObject([]byte(`{}`))
	require.NoError(t, err)
	var w Water
	err = dec.Decode("water", &w)
	var notFound KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "water", notFound.Key)

	_, err = DecodeObject([]byte(`null`))
	assert.Error(t, err)
	_, err = DecodeObject([]byte(`[1]`))
	assert.Error(t, err)
}
