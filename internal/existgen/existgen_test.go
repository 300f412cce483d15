package existgen

import (
	"go/token"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

var drinkable = NewDeclaration(DeclInterface, "Drinkable")

func mustRequest(t *testing.T, sel Selection, args string, vs ...Variant) Request {
	t.Helper()
	a, err := ParseArguments(args)
	if err != nil {
		t.Fatalf("ParseArguments(%q): %v", args, err)
	}
	r, err := Resolve(drinkable, a, sel, NewVariants(vs...))
	if err != nil {
		t.Fatalf("Resolve(%s, %s): %v", sel, NewVariants(vs...), err)
	}
	return r
}

func TestSelections(t *testing.T) {
	seen := map[string]bool{}
	for _, sel := range Selections() {
		if !sel.Valid() {
			t.Errorf("selection %+v is not valid", sel)
		}
		if seen[sel.Macro()] {
			t.Errorf("duplicate macro %s", sel.Macro())
		}
		seen[sel.Macro()] = true
		got, ok := LookupMacro(sel.Macro())
		if !ok || got != sel {
			t.Errorf("LookupMacro(%q) = %v, %v, want %v", sel.Macro(), got, ok, sel)
		}
	}
	if len(seen) != 11 {
		t.Errorf("got %d macros, want 11", len(seen))
	}
	if got := Macros(); len(got) != 12 || got[11] != RegistryMacro {
		t.Errorf("Macros() = %v, want 11 capability macros then %s", got, RegistryMacro)
	}
	if _, ok := LookupMacro("CodableHashableExistential"); ok {
		t.Error("LookupMacro found a macro with capabilities out of order")
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		sel      Selection
		variants []Variant
		name     string
		params   string
		wrapped  string
		conforms []Conformance
	}{
		{
			Selection{Equatable, CodingNone}, nil,
			"EquatableDrinkable", "", "Drinkable",
			[]Conformance{{Interface: "existential.EquatableSupport"}},
		},
		{
			Selection{Hashable, CodingNone}, []Variant{Mutable},
			"HashableMutableDrinkable", "", "Drinkable",
			[]Conformance{
				{Interface: "existential.EquatableSupport"},
				{Interface: "existential.Hashable"},
			},
		},
		{
			Selection{EqualityNone, Decodable}, []Variant{Optional},
			"DecodableOptionalDrinkable",
			"[Coding existential.DecodingProvider[Drinkable]]",
			"Drinkable?",
			[]Conformance{
				{"existential.Decodable", true},
				{"existential.OptionalDecodingSupport", true},
			},
		},
		{
			Selection{EqualityNone, Encodable}, []Variant{Sequence},
			"EncodableSequenceOfDrinkable",
			"[T existential.Sequence[Drinkable], Coding existential.EncodingProvider[Drinkable]]",
			"T",
			[]Conformance{{Interface: "existential.Encodable"}},
		},
		{
			Selection{Equatable, CodingNone}, []Variant{Optional, Sequence},
			"EquatableOptionalSequenceOfDrinkable",
			"[T existential.Sequence[Drinkable]]",
			"T?",
			[]Conformance{{Interface: "existential.EquatableSequenceSupport"}},
		},
		{
			Selection{Hashable, Codable}, []Variant{Mutable, Optional, Sequence},
			"HashableCodableMutableOptionalRangeReplaceableCollectionOfDrinkable",
			"[T existential.RangeReplaceableCollection[Drinkable], Coding existential.CodingProvider[Drinkable]]",
			"T?",
			[]Conformance{
				{Interface: "existential.EquatableSequenceSupport"},
				{Interface: "existential.Hashable"},
				{"existential.Codable", true},
				{"existential.OptionalDecodingSupport", true},
				{Interface: "existential.OptionalEncodingSupport"},
			},
		},
	}

	for _, tc := range tests {
		sig := SynthesizeSignature(mustRequest(t, tc.sel, "", tc.variants...))
		if sig.TypeName != tc.name {
			t.Errorf("%s%v: name = %q, want %q", tc.sel, tc.variants, sig.TypeName, tc.name)
		}
		if got := sig.TypeParams(); got != tc.params {
			t.Errorf("%s: type params = %q, want %q", tc.name, got, tc.params)
		}
		if got := sig.WrappedTypeNotation(); got != tc.wrapped {
			t.Errorf("%s: wrapped type = %q, want %q", tc.name, got, tc.wrapped)
		}
		if diff := cmp.Diff(sig.Conformances, tc.conforms); diff != "" {
			t.Errorf("%s: wrong conformances (-got+want):\n%s", tc.name, diff)
		}
	}
}

func TestSignatureDeterministic(t *testing.T) {
	for _, sel := range Selections() {
		for _, vs := range AllVariants() {
			r, err := Resolve(drinkable, Arguments{}, sel, vs)
			if err != nil {
				t.Fatalf("Resolve(%s, %s): %v", sel, vs, err)
			}
			a, b := SynthesizeSignature(r), SynthesizeSignature(r)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("%s %s: signature changed between calls (-first+second):\n%s", sel, vs, diff)
			}
		}
	}
}

func TestExpandFanOut(t *testing.T) {
	infixes := []string{
		"",
		"Mutable",
		"Optional",
		"SEQOf",
		"MutableOptional",
		"MutableSEQOf",
		"OptionalSEQOf",
		"MutableOptionalSEQOf",
	}
	for _, sel := range Selections() {
		shapes, err := Expand(drinkable, Arguments{}, sel)
		if err != nil {
			t.Fatalf("Expand(%s): %v", sel, err)
		}
		var got, want []string
		for _, sh := range shapes {
			got = append(got, sh.TypeName)
		}
		for _, infix := range infixes {
			infix = strings.ReplaceAll(infix, "SEQ", sequenceToken(sel.Coding))
			want = append(want, sel.Prefix()+infix+"Drinkable")
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Expand(%s) wrong types (-got+want):\n%s", sel, diff)
		}
	}
}

func memberNames(ms []Member) []string {
	var ret []string
	for _, m := range ms {
		ret = append(ret, m.Name)
	}
	return ret
}

func TestMembers(t *testing.T) {
	tests := []struct {
		sel      Selection
		args     string
		variants []Variant
		want     []string
	}{
		{
			Selection{Equatable, CodingNone}, "", []Variant{Mutable},
			[]string{"NewEquatableMutableDrinkable", "WrappedValue", "SetWrappedValue", "ProjectedValue", "EquatableValue", "Equal"},
		},
		{
			Selection{Hashable, CodingNone}, "", []Variant{Sequence},
			[]string{"NewHashableSequenceOfDrinkable", "WrappedValue", "ProjectedValue", "EquatableSequence", "Equal", "Hash"},
		},
		{
			Selection{EqualityNone, Decodable}, "", []Variant{Optional},
			[]string{"NewDecodableOptionalDrinkable", "WrappedValue", "ProjectedValue", "UnmarshalJSON", "DecodeAbsent"},
		},
		{
			Selection{EqualityNone, Encodable}, "", []Variant{Optional},
			[]string{"NewEncodableOptionalDrinkable", "WrappedValue", "ProjectedValue", "MarshalJSON", "IsAbsent", "ShouldEncodeNil", "IsZero"},
		},
		{
			Selection{Hashable, Codable}, "", []Variant{Optional},
			[]string{
				"NewHashableCodableOptionalDrinkable", "WrappedValue", "ProjectedValue",
				"EquatableValue", "Equal", "Hash",
				"UnmarshalJSON", "MarshalJSON",
				"DecodeAbsent", "IsAbsent", "ShouldEncodeNil", "IsZero",
			},
		},
		{
			Selection{Hashable, CodingNone}, "accessModifier=private", nil,
			[]string{"newHashableDrinkable", "WrappedValue", "ProjectedValue", "EquatableValue", "Equal", "Hash"},
		},
	}

	for _, tc := range tests {
		r := mustRequest(t, tc.sel, tc.args, tc.variants...)
		got := memberNames(SynthesizeMembers(r))
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("members of %s %v (-got+want):\n%s", tc.sel, tc.variants, diff)
		}
	}
}

func TestMemberBodies(t *testing.T) {
	body := func(r Request, name string) string {
		for _, m := range SynthesizeMembers(r) {
			if m.Name == name {
				return strings.Join(m.Body, "\n")
			}
		}
		t.Fatalf("no member %s", name)
		return ""
	}

	r := mustRequest(t, Selection{Hashable, Codable}, "", Optional)
	want := `if x.wrappedValue != nil {
	h.CombineTypeOf(x.wrappedValue)
	h.Combine(x.wrappedValue)
} else {
	existential.CombineAbsent[Drinkable](h)
}`
	if diff := cmp.Diff(body(r, "Hash"), want); diff != "" {
		t.Errorf("optional hash (-got+want):\n%s", diff)
	}

	r = mustRequest(t, Selection{Hashable, Codable}, "", Sequence)
	want = `elems := make([][]byte, 0, len(x.wrappedValue))
for _, v := range x.wrappedValue {
	bs, err := NewHashableCodableDrinkable[Coding](v).MarshalJSON()
	if err != nil {
		return nil, err
	}
	elems = append(elems, bs)
}
return existential.JoinArray(elems), nil`
	if diff := cmp.Diff(body(r, "MarshalJSON"), want); diff != "" {
		t.Errorf("sequence encode (-got+want):\n%s", diff)
	}

	r = mustRequest(t, Selection{EqualityNone, Decodable}, "accessModifier=fileprivate", Optional, Sequence)
	if got := body(r, "UnmarshalJSON"); !strings.Contains(got, "var v decodableDrinkable[Coding]") {
		t.Errorf("private sequence decode does not use private scalar wrapper:\n%s", got)
	}
}

func diagnosticKind(t *testing.T, err error) DiagnosticKind {
	t.Helper()
	var d *Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("error %v is not a diagnostic", err)
	}
	return d.Kind
}

func TestResolveErrors(t *testing.T) {
	hashable := Selection{Hashable, CodingNone}
	tests := []struct {
		name string
		decl Declaration
		args string
		want DiagnosticKind
	}{
		{"struct", NewDeclaration(DeclStruct, "Water"), "", InvalidDeclarationKind},
		{"generic interface", NewDeclaration(DeclGenericInterface, "Box"), "", InvalidDeclarationKind},
		{"func", NewDeclaration(DeclFunc, "main"), "", InvalidDeclarationKind},
		{"bad access", drinkable, "accessModifier=open", InvalidArgument},
		{"unknown label", drinkable, "expectedTypes=Water", InvalidArgument},
		{"nil declaration", nil, "", InternalError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, err := ParseArguments(tc.args)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Generate(Attribute{
				Pos:   token.Position{Filename: "drinkable.go", Line: 7, Column: 1},
				Macro: hashable.Macro(),
				Decl:  tc.decl,
				Args:  args,
			})
			if err == nil {
				t.Fatal("Generate succeeded, want error")
			}
			if got := diagnosticKind(t, err); got != tc.want {
				t.Errorf("got %s (%v), want %s", got, err, tc.want)
			}
			if !strings.HasPrefix(err.Error(), "drinkable.go:7:1: ") {
				t.Errorf("diagnostic %q not positioned at the directive", err)
			}
		})
	}

	msg := invalidDeclarationKind(NewDeclaration(DeclStruct, "Water"), DeclInterface).Error()
	if want := "directive must be attached to an interface declaration, Water is a struct"; msg != want {
		t.Errorf("invalid declaration message = %q, want %q", msg, want)
	}
}

func TestParseArguments(t *testing.T) {
	a, err := ParseArguments("accessModifier=.public  expectedTypes=Water,*Beer")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Labels(), []string{"accessModifier", "expectedTypes"}); diff != "" {
		t.Errorf("wrong labels (-got+want):\n%s", diff)
	}
	access, err := resolveAccess(a)
	if err != nil || access != AccessPublic {
		t.Errorf("resolveAccess = %v, %v, want public", access, err)
	}
	types, ok := a.MemberAccessList("expectedTypes")
	if diff := cmp.Diff(types, []string{"Water", "*Beer"}); !ok || diff != "" {
		t.Errorf("wrong expectedTypes (-got+want):\n%s", diff)
	}

	spaced, err := ParseArguments("expectedTypes=Water, *Beer ,Espresso accessModifier=default")
	if err != nil {
		t.Fatalf("ParseArguments with spaced list: %v", err)
	}
	types, _ = spaced.MemberAccessList("expectedTypes")
	if diff := cmp.Diff(types, []string{"Water", "*Beer", "Espresso"}); diff != "" {
		t.Errorf("wrong spaced expectedTypes (-got+want):\n%s", diff)
	}
	access, err = resolveAccess(spaced)
	if err != nil || access != AccessDefault {
		t.Errorf("resolveAccess(default) = %v, %v, want default", access, err)
	}

	for _, bad := range []string{"public", "=x", "a=1 a=2", "expectedTypes=Water Beer"} {
		if _, err := ParseArguments(bad); err == nil {
			t.Errorf("ParseArguments(%q) succeeded, want error", bad)
		}
	}
}

func TestGenerateRegistry(t *testing.T) {
	args, err := ParseArguments("expectedTypes=Water,Beer,*Espresso")
	if err != nil {
		t.Fatal(err)
	}
	sh, err := GenerateRegistry(drinkable, args)
	if err != nil {
		t.Fatalf("GenerateRegistry: %v", err)
	}
	if sh.TypeName != "DrinkableSimpleCoding" {
		t.Errorf("name = %q, want DrinkableSimpleCoding", sh.TypeName)
	}
	want := `existential.NewRegistry(
	existential.Expect("Water", func(v Water) Drinkable { return v }),
	existential.Expect("Beer", func(v Beer) Drinkable { return v }),
	existential.Expect("Espresso", func(v *Espresso) Drinkable { return v }),
)`
	if len(sh.Vars) != 1 || sh.Vars[0].Name != "drinkableSimpleCodingTypes" {
		t.Fatalf("wrong registry vars %+v", sh.Vars)
	}
	if diff := cmp.Diff(sh.Vars[0].Value, want); diff != "" {
		t.Errorf("wrong registry table (-got+want):\n%s", diff)
	}
	if diff := cmp.Diff(memberNames(sh.Members), []string{"ShouldEncodeNil", "Encode", "Decode"}); diff != "" {
		t.Errorf("wrong members (-got+want):\n%s", diff)
	}

	bad := []struct {
		name string
		decl Declaration
		args string
		want DiagnosticKind
	}{
		{"not interface", NewDeclaration(DeclStruct, "Water"), "expectedTypes=Water", InvalidDeclarationKind},
		{"missing types", drinkable, "", InvalidArgument},
		{"empty entry", drinkable, "expectedTypes=Water,,Beer", InvalidArgument},
		{"not a type", drinkable, "expectedTypes=Water,Beer()", InvalidArgument},
		{"duplicate", drinkable, "expectedTypes=Water,Water", InvalidArgument},
		{"same key", drinkable, "expectedTypes=Water,*Water", InvalidArgument},
		{"qualified", drinkable, "expectedTypes=time.Duration,Water", InvalidArgument},
		{"qualified pointer", drinkable, "expectedTypes=Water,*bytes.Buffer", InvalidArgument},
		{"unknown label", drinkable, "expectedTypes=Water types=Beer", InvalidArgument},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			args, err := ParseArguments(tc.args)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := GenerateRegistry(tc.decl, args); err == nil {
				t.Error("GenerateRegistry succeeded, want error")
			} else if got := diagnosticKind(t, err); got != tc.want {
				t.Errorf("got %s (%v), want %s", got, err, tc.want)
			}
		})
	}
}

func TestGenerateFileDiagnostics(t *testing.T) {
	water := NewDeclaration(DeclStruct, "Water")
	attrs := []Attribute{
		{Pos: token.Position{Filename: "a.go", Line: 3, Column: 1}, Macro: "EquatableExistential", Decl: drinkable},
		{Pos: token.Position{Filename: "a.go", Line: 9, Column: 1}, Macro: "EquatableExistential", Decl: water},
		{Pos: token.Position{Filename: "a.go", Line: 12, Column: 1}, Macro: "ComparableExistential", Decl: drinkable},
	}
	src, err := GenerateFile("drinkable", attrs)
	if src != nil {
		t.Errorf("GenerateFile returned source despite failures")
	}
	var diags Diagnostics
	if !errors.As(err, &diags) {
		t.Fatalf("GenerateFile error %v is not Diagnostics", err)
	}
	want := []string{
		"a.go:9:1: directive must be attached to an interface declaration, Water is a struct",
		`a.go:12:1: unknown directive "ComparableExistential"`,
	}
	if diff := cmp.Diff(strings.Split(diags.Error(), "\n"), want); diff != "" {
		t.Errorf("wrong diagnostics (-got+want):\n%s", diff)
	}
}
