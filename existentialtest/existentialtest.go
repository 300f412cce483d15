// Package existentialtest provides helpers to check the equality,
// hashing and coding of generated wrappers in tests.
package existentialtest

import (
	"testing"

	"github.com/danderson/existential"
)

// Product calls check on every pair in the cartesian product of as
// and bs, and returns the number of pairs checked.
func Product[A, B any](as []A, bs []B, check func(a A, b B)) int {
	n := 0
	for _, a := range as {
		for _, b := range bs {
			check(a, b)
			n++
		}
	}
	return n
}

// EqualityProduct checks that every wrapper in as compares to every
// wrapper in bs as want, in both directions. It returns the number of
// pairs checked.
func EqualityProduct(t testing.TB, as, bs []existential.EquatableSupport, want bool) int {
	t.Helper()
	return Product(as, bs, func(a, b existential.EquatableSupport) {
		t.Helper()
		if got := existential.Equal(a, b); got != want {
			t.Errorf("Equal(%T(%v), %T(%v)) = %v, want %v", a, a.EquatableValue(), b, b.EquatableValue(), got, want)
		}
		if got := existential.Equal(b, a); got != want {
			t.Errorf("Equal(%T(%v), %T(%v)) = %v, want %v", b, b.EquatableValue(), a, a.EquatableValue(), got, want)
		}
	})
}

// SequenceEqualityProduct is [EqualityProduct] for sequence wrappers.
func SequenceEqualityProduct(t testing.TB, as, bs []existential.EquatableSequenceSupport, want bool) int {
	t.Helper()
	return Product(as, bs, func(a, b existential.EquatableSequenceSupport) {
		t.Helper()
		if got := existential.EqualSequences(a, b); got != want {
			t.Errorf("EqualSequences(%T, %T) = %v, want %v", a, b, got, want)
		}
		if got := existential.EqualSequences(b, a); got != want {
			t.Errorf("EqualSequences(%T, %T) = %v, want %v", b, a, got, want)
		}
	})
}

// HashProduct checks that every wrapper in as hashes to the same value
// as every wrapper in bs. It returns the number of pairs checked.
func HashProduct[W existential.Hashable](t testing.TB, as, bs []W) int {
	t.Helper()
	return Product(as, bs, func(a, b W) {
		t.Helper()
		if ha, hb := existential.HashOf(a), existential.HashOf(b); ha != hb {
			t.Errorf("HashOf(%T) = %x, HashOf(%T) = %x, want equal hashes", a, ha, b, hb)
		}
	})
}

// RoundTrip encodes src and decodes the result into dst, returning
// the encoded form.
func RoundTrip(t testing.TB, src existential.Encodable, dst existential.Decodable) []byte {
	t.Helper()
	bs, err := src.MarshalJSON()
	if err != nil {
		t.Fatalf("encoding %T: %v", src, err)
	}
	if err := dst.UnmarshalJSON(bs); err != nil {
		t.Fatalf("decoding %s into %T: %v", bs, dst, err)
	}
	return bs
}
