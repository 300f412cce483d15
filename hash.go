package existential

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by values that feed their own hash state
// into a [Hasher].
//
// Values that are equal according to [EqualValues] must produce the
// same hash state.
type Hashable interface {
	Hash(h *Hasher)
}

// A Hasher accumulates a 64-bit hash of the values combined into it.
//
// The zero value is ready to use.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns a new, empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// HashOf returns the hash of v.
func HashOf(v Hashable) uint64 {
	h := NewHasher()
	v.Hash(h)
	return h.Sum64()
}

const (
	tagAbsent byte = iota
	tagType
	tagFalse
	tagTrue
	tagCycle
)

// maxHashDepth bounds how far [Hasher.Combine] follows interfaces and
// containers. Cycles through pointers are cut earlier, when the walk
// revisits a pointer it is already inside.
const maxHashDepth = 64

func (h *Hasher) digest() *xxhash.Digest {
	if h.d == nil {
		h.d = xxhash.New()
	}
	return h.d
}

// Sum64 returns the hash of everything combined so far.
func (h *Hasher) Sum64() uint64 {
	return h.digest().Sum64()
}

// Write adds bs to the hash state. It never returns an error.
func (h *Hasher) Write(bs []byte) (int, error) {
	return h.digest().Write(bs)
}

// WriteUint64 adds v to the hash state.
func (h *Hasher) WriteUint64(v uint64) {
	h.digest().Write(binary.LittleEndian.AppendUint64(h.buf[:0], v))
}

// WriteString adds s to the hash state. The length of s is included,
// so that consecutive strings cannot run into each other.
func (h *Hasher) WriteString(s string) {
	h.WriteUint64(uint64(len(s)))
	h.digest().WriteString(s)
}

func (h *Hasher) writeByte(b byte) {
	h.buf[0] = b
	h.digest().Write(h.buf[:1])
}

func (h *Hasher) writeFloat(f float64) {
	if f == 0 {
		// Fold -0 into 0, they compare equal.
		f = 0
	}
	h.WriteUint64(math.Float64bits(f))
}

// CombineTypeOf adds the dynamic type of v to the hash state. A nil v
// combines the same state as an absent interface value, see
// [CombineAbsent].
func (h *Hasher) CombineTypeOf(v any) {
	if v == nil {
		h.writeByte(tagAbsent)
		return
	}
	h.combineType(reflect.TypeOf(v))
}

func (h *Hasher) combineType(t reflect.Type) {
	h.writeByte(tagType)
	h.WriteString(typeInfoOf(t).key)
}

// Combine adds the value v to the hash state.
//
// If v implements [Hashable], its Hash method is used. Otherwise v is
// hashed structurally, consistently with the == and
// [reflect.DeepEqual] comparisons that [EqualValues] performs. Values
// that implement [Equaler] should also implement Hashable.
//
// Combine does not add the dynamic type of v, use
// [Hasher.CombineTypeOf] for that. A nil v adds nothing.
func (h *Hasher) Combine(v any) {
	if v == nil {
		return
	}
	if hv, ok := v.(Hashable); ok {
		hv.Hash(h)
		return
	}
	w := walker{h: h}
	w.combine(reflect.ValueOf(v), 0)
}

// CombineType adds the type T to the hash state.
func CombineType[T any](h *Hasher) {
	h.combineType(reflect.TypeFor[T]())
}

// CombineAbsent adds the state of an absent value of type T.
//
// Absent interface values have no dynamic type, so all absent
// interface values hash alike, matching [Equal]. Absent values of
// other types, such as sequences, include T.
func CombineAbsent[T any](h *Hasher) {
	h.writeByte(tagAbsent)
	if t := reflect.TypeFor[T](); t.Kind() != reflect.Interface {
		h.WriteString(typeInfoOf(t).key)
	}
}

// walker hashes a value structurally. path holds the pointers the
// walk is currently inside of.
type walker struct {
	h    *Hasher
	path map[uintptr]bool
}

func (w *walker) combine(v reflect.Value, depth int) {
	h := w.h
	if depth > maxHashDepth {
		return
	}
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		h.writeByte(tagAbsent)
		return
	}

	info := typeInfoOf(v.Type())
	if info.hashable && v.CanInterface() {
		v.Interface().(Hashable).Hash(h)
		return
	}
	if info.ptrHashable && v.CanAddr() && v.Addr().CanInterface() {
		v.Addr().Interface().(Hashable).Hash(h)
		return
	}

	k := v.Kind()
	switch {
	case k == reflect.Bool:
		if v.Bool() {
			h.writeByte(tagTrue)
		} else {
			h.writeByte(tagFalse)
		}
	case intKinds.Has(k):
		h.WriteUint64(uint64(v.Int()))
	case uintKinds.Has(k):
		h.WriteUint64(v.Uint())
	case floatKinds.Has(k):
		h.writeFloat(v.Float())
	case complexKinds.Has(k):
		c := v.Complex()
		h.writeFloat(real(c))
		h.writeFloat(imag(c))
	case k == reflect.String:
		h.WriteString(v.String())
	case k == reflect.Slice || k == reflect.Array:
		if k == reflect.Slice && v.IsNil() {
			h.writeByte(tagAbsent)
			return
		}
		h.WriteUint64(uint64(v.Len()))
		for i := range v.Len() {
			w.combine(v.Index(i), depth+1)
		}
	case k == reflect.Map:
		if v.IsNil() {
			h.writeByte(tagAbsent)
			return
		}
		// Map iteration order is random, combine the entries with a
		// commutative sum.
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			var sub Hasher
			sw := walker{h: &sub, path: w.path}
			sw.combine(iter.Key(), depth+1)
			sw.combine(iter.Value(), depth+1)
			sum += sub.Sum64()
		}
		h.WriteUint64(uint64(v.Len()))
		h.WriteUint64(sum)
	case k == reflect.Pointer:
		p := v.Pointer()
		if w.path[p] {
			h.writeByte(tagCycle)
			return
		}
		if w.path == nil {
			w.path = map[uintptr]bool{}
		}
		w.path[p] = true
		w.combine(v.Elem(), depth+1)
		delete(w.path, p)
	case k == reflect.Interface:
		if v.IsNil() {
			h.writeByte(tagAbsent)
			return
		}
		e := v.Elem()
		h.combineType(e.Type())
		w.combine(e, depth+1)
	case k == reflect.Struct:
		for i := range v.NumField() {
			w.combine(v.Field(i), depth+1)
		}
	case opaqueKinds.Has(k):
		h.WriteUint64(uint64(v.Pointer()))
	}
}
