package existential

import (
	"reflect"

	"github.com/creachadair/mds/mapset"
)

var (
	// intKinds is the set of signed integer kinds, hashed by their
	// int64 value.
	intKinds = mapset.New(
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
	)

	// uintKinds is the set of unsigned integer kinds, hashed by their
	// uint64 value.
	uintKinds = mapset.New(
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Uintptr,
	)

	floatKinds = mapset.New(
		reflect.Float32,
		reflect.Float64,
	)

	complexKinds = mapset.New(
		reflect.Complex64,
		reflect.Complex128,
	)

	// opaqueKinds is the set of kinds that only compare by identity,
	// hashed by their pointer value.
	opaqueKinds = mapset.New(
		reflect.Chan,
		reflect.Func,
		reflect.UnsafePointer,
	)

	hashableType = reflect.TypeFor[Hashable]()
)
