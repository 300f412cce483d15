package existentialtest

import (
	"testing"

	"github.com/danderson/existential"
)

type tag string

func (t tag) EquatableValue() any { return string(t) }

func (t tag) Equal(other existential.EquatableSupport) bool { return existential.Equal(t, other) }

func TestProduct(t *testing.T) {
	var pairs [][2]int
	n := Product([]int{1, 2, 3}, []int{10, 20}, func(a, b int) {
		pairs = append(pairs, [2]int{a, b})
	})
	if n != 6 || len(pairs) != 6 {
		t.Fatalf("Product checked %d pairs (%d recorded), want 6", n, len(pairs))
	}
	if pairs[0] != [2]int{1, 10} || pairs[5] != [2]int{3, 20} {
		t.Errorf("Product visited pairs in the wrong order: %v", pairs)
	}
	if n := Product[int, int](nil, []int{1}, func(int, int) {}); n != 0 {
		t.Errorf("Product of empty set checked %d pairs", n)
	}
}

func TestEqualityProduct(t *testing.T) {
	same := []existential.EquatableSupport{tag("a"), tag("a")}
	if n := EqualityProduct(t, same, same, true); n != 4 {
		t.Errorf("EqualityProduct checked %d pairs, want 4", n)
	}
	other := []existential.EquatableSupport{tag("b")}
	if n := EqualityProduct(t, same, other, false); n != 2 {
		t.Errorf("EqualityProduct checked %d pairs, want 2", n)
	}
}
