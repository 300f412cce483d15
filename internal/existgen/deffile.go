package existgen

import (
	"bytes"
	"go/token"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Definitions are directives read from a definitions file rather than
// from Go source. They describe declarations that live elsewhere, for
// example in a package existgen cannot annotate.
type Definitions struct {
	// Package is the name of the package generated code belongs to.
	Package    string
	Attributes []Attribute
}

type defFile struct {
	Package      string           `yaml:"package" toml:"package"`
	Declarations []defDeclaration `yaml:"declarations" toml:"declarations"`
}

type defDeclaration struct {
	Name       string         `yaml:"name" toml:"name"`
	Kind       string         `yaml:"kind" toml:"kind"`
	Attributes []defAttribute `yaml:"attributes" toml:"attributes"`
}

type defAttribute struct {
	Macro string `yaml:"macro" toml:"macro"`
	Args  string `yaml:"args" toml:"args"`
	// line is the attribute's line in a YAML file, or 0.
	line int
}

func (a *defAttribute) UnmarshalYAML(n *yaml.Node) error {
	type plain defAttribute
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*a = defAttribute(p)
	a.line = n.Line
	return nil
}

// ReadDefinitions decodes the definitions file filename, whose format
// is chosen by its extension: .yaml, .yml or .toml.
func ReadDefinitions(filename string, data []byte) (*Definitions, error) {
	var f defFile
	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "decoding %s", filename)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %s", filename)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Newf("decoding %s: unknown key %q", filename, undecoded[0].String())
		}
	default:
		return nil, errors.Newf("unknown definitions format %q for %s", ext, filename)
	}
	return f.definitions(filename)
}

func (f *defFile) definitions(filename string) (*Definitions, error) {
	if !token.IsIdentifier(f.Package) {
		return nil, errors.Newf("%s: invalid package name %q", filename, f.Package)
	}
	ret := &Definitions{Package: f.Package}
	var diags Diagnostics
	for _, d := range f.Declarations {
		kind, ok := parseDeclKind(d.Kind)
		if !ok {
			return nil, errors.Newf("%s: declaration %s has unknown kind %q", filename, d.Name, d.Kind)
		}
		decl := NewDeclaration(kind, d.Name)
		for _, a := range d.Attributes {
			pos := token.Position{Filename: filename, Line: a.line}
			args, err := ParseArguments(a.Args)
			if err != nil {
				diags = append(diags, diagnose(pos, err))
				continue
			}
			ret.Attributes = append(ret.Attributes, Attribute{
				Pos:   pos,
				Macro: a.Macro,
				Decl:  decl,
				Args:  args,
			})
		}
	}
	if len(diags) > 0 {
		return nil, diags
	}
	return ret, nil
}

func parseDeclKind(s string) (DeclKind, bool) {
	for k := DeclInterface; k <= DeclConst; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return DeclOther, false
}
