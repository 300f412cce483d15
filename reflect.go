package existential

import "reflect"

// typeInfo is the per-type information the hasher and registry need.
type typeInfo struct {
	// key is a stable string identifying the type.
	key string
	// hashable is true if the type implements Hashable.
	hashable bool
	// ptrHashable is true if only a pointer to the type implements
	// Hashable.
	ptrHashable bool
}

var typeInfos cache[typeInfo]

func typeInfoOf(t reflect.Type) typeInfo {
	if ret, ok := typeInfos.Get(t); ok {
		return ret
	}
	ret := typeInfo{key: typeKey(t)}
	switch t.Kind() {
	case reflect.Interface:
		// Interface values are hashed through their dynamic value.
	case reflect.Pointer:
		ret.hashable = t.Implements(hashableType)
	default:
		ret.hashable = t.Implements(hashableType)
		ret.ptrHashable = !ret.hashable && reflect.PointerTo(t).Implements(hashableType)
	}
	return typeInfos.Put(t, ret)
}

// typeKey returns a string that identifies t. Named types are
// qualified by their full package path, so that identically named
// types from different packages stay distinct.
func typeKey(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// derefType returns the type t points to, through any number of
// pointers.
func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
