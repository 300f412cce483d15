package existgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlDefs = `package: drinkable
declarations:
  - name: Drinkable
    kind: interface
    attributes:
      - macro: HashableCodableExistential
        args: accessModifier=public
      - macro: SimpleCodingProviding
        args: expectedTypes=Water,Beer
  - name: Water
    kind: struct
    attributes:
      - macro: EquatableExistential
`

const tomlDefs = `package = "drinkable"

[[declarations]]
name = "Drinkable"
kind = "interface"

[[declarations.attributes]]
macro = "HashableCodableExistential"
args = "accessModifier=public"

[[declarations.attributes]]
macro = "SimpleCodingProviding"
args = "expectedTypes=Water,Beer"

[[declarations]]
name = "Water"
kind = "struct"

[[declarations.attributes]]
macro = "EquatableExistential"
`

func TestReadDefinitions(t *testing.T) {
	tests := []struct {
		filename string
		src      string
		lines    []int
	}{
		{"defs.yaml", yamlDefs, []int{6, 8, 13}},
		{"defs.toml", tomlDefs, []int{0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			defs, err := ReadDefinitions(tc.filename, []byte(tc.src))
			if err != nil {
				t.Fatalf("ReadDefinitions: %v", err)
			}
			if defs.Package != "drinkable" {
				t.Errorf("package = %q, want drinkable", defs.Package)
			}
			var got []scanned
			for _, a := range defs.Attributes {
				if a.Pos.Filename != tc.filename {
					t.Errorf("attribute %s positioned in %q", a.Macro, a.Pos.Filename)
				}
				got = append(got, scanned{a.Pos.Line, a.Macro, a.Decl.Kind(), a.Decl.Name(), a.Args.Labels()})
			}
			want := []scanned{
				{tc.lines[0], "HashableCodableExistential", DeclInterface, "Drinkable", []string{"accessModifier"}},
				{tc.lines[1], "SimpleCodingProviding", DeclInterface, "Drinkable", []string{"expectedTypes"}},
				{tc.lines[2], "EquatableExistential", DeclStruct, "Water", nil},
			}
			if diff := cmp.Diff(got, want); diff != "" {
				t.Errorf("wrong attributes (-got+want):\n%s", diff)
			}

			_, err = GenerateFile(defs.Package, defs.Attributes)
			if err == nil || !strings.Contains(err.Error(), "Water is a struct") {
				t.Errorf("GenerateFile error = %v, want struct diagnostic", err)
			}
		})
	}
}

func TestReadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		filename string
		src      string
	}{
		{"defs.json", `{}`},
		{"defs.yaml", "package: drinkable\nunknown: 1\n"},
		{"defs.toml", "package = \"drinkable\"\nunknown = 1\n"},
		{"defs.yaml", "package: 'not a name'\n"},
		{"defs.yaml", "package: p\ndeclarations:\n  - name: D\n    kind: protocol\n"},
		{"defs.yaml", "package: p\ndeclarations:\n  - name: D\n    kind: interface\n    attributes:\n      - macro: EquatableExistential\n        args: bogus\n"},
	}
	for _, tc := range tests {
		if _, err := ReadDefinitions(tc.filename, []byte(tc.src)); err == nil {
			t.Errorf("ReadDefinitions(%s, %q) succeeded, want error", tc.filename, tc.src)
		}
	}
}
