package main

import (
	"strings"
	"testing"

	"github.com/danderson/existential/internal/existgen"
	"github.com/google/go-cmp/cmp"
)

func TestIndenter(t *testing.T) {
	var buf strings.Builder
	out := indenter{w: &buf}
	out.s("a")
	out.indent(1)
	out.f("b %d\nc", 1)
	out.indent(2)
	out.s("d")
	out.indent(0)
	out.s("e")

	want := "a\n  b 1\n  c\n    d\ne\n"
	if got := buf.String(); got != want {
		t.Errorf("indenter output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintShape(t *testing.T) {
	var args existgen.Arguments
	shapes, err := existgen.Generate(existgen.Attribute{
		Macro: "HashableExistential",
		Decl:  existgen.NewDeclaration(existgen.DeclInterface, "Drinkable"),
		Args:  args,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf strings.Builder
	out := indenter{w: &buf}
	printShape(&out, shapes[0])
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	want := []string{
		"HashableDrinkable",
		"  wraps Drinkable",
		"  implements existential.EquatableSupport, existential.Hashable",
		"  NewHashableDrinkable(v Drinkable) HashableDrinkable",
		"  (x) Equal(other existential.EquatableSupport) bool",
		"  (x) EquatableValue() any",
		"  (x) Hash(h *existential.Hasher)",
		"  (x) ProjectedValue() HashableDrinkable",
		"  (x) WrappedValue() Drinkable",
	}
	if diff := cmp.Diff(lines, want); diff != "" {
		t.Errorf("wrong shape listing (-got+want):\n%s", diff)
	}
}
