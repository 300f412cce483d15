package existgen

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"
)

// RuntimePath is the import path of the package generated code
// depends on.
const RuntimePath = "github.com/danderson/existential"

// Header is the first line of every generated file.
const Header = "// Code generated by existgen. DO NOT EDIT."

type generator struct {
	out bytes.Buffer
}

func (g *generator) s(s string) {
	g.out.WriteString(s)
}

func (g *generator) f(msg string, args ...any) {
	fmt.Fprintf(&g.out, msg, args...)
}

// File renders shapes as a Go source file in package pkgName.
//
// If the rendered code cannot be formatted, File returns the
// unformatted source along with the error.
func File(pkgName string, shapes []*Shape) ([]byte, error) {
	if pkgName == "" {
		return nil, errors.AssertionFailedf("no package name provided")
	}
	var g generator
	g.f("%s\n\npackage %s\n\nimport %q\n", Header, pkgName, RuntimePath)
	for _, sh := range shapes {
		g.Shape(sh)
	}

	ret, err := imports.Process("", g.out.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return g.out.Bytes(), errors.Wrap(err, "formatting generated code")
	}
	return ret, nil
}

func (g *generator) doc(lines []string) {
	for _, l := range lines {
		g.f("// %s\n", l)
	}
}

func (g *generator) Shape(sh *Shape) {
	g.s("\n")
	g.doc(sh.Doc)
	if sh.WrappedType == "" {
		g.f("type %s%s struct{}\n", sh.TypeName, sh.TypeParams())
	} else {
		g.f("type %s%s struct {\n\twrappedValue %s\n}\n", sh.TypeName, sh.TypeParams(), sh.WrappedType)
	}

	for _, v := range sh.Vars {
		g.s("\n")
		g.doc(v.Doc)
		g.f("var %s = %s\n", v.Name, v.Value)
	}

	for _, m := range sh.Members {
		g.Member(sh, m)
	}

	if len(sh.Conformances) == 0 {
		return
	}
	g.f("\nfunc _%s() {\n", sh.TypeParams())
	for _, c := range sh.Conformances {
		if c.Pointer {
			g.f("\tvar _ %s = (*%s)(nil)\n", c.Interface, sh.Instance())
		} else {
			g.f("\tvar _ %s = %s{}\n", c.Interface, sh.Instance())
		}
	}
	g.s("}\n")
}

func (g *generator) Member(sh *Shape, m Member) {
	g.s("\n")
	g.doc(m.Doc)
	switch m.Receiver {
	case NoReceiver:
		g.f("func %s%s(%s)", m.Name, sh.TypeParams(), m.Params)
	case ValueReceiver:
		g.f("func (x %s) %s(%s)", sh.Instance(), m.Name, m.Params)
	case PointerReceiver:
		g.f("func (x *%s) %s(%s)", sh.Instance(), m.Name, m.Params)
	}
	if m.Results != "" {
		g.f(" %s", m.Results)
	}
	g.s(" {\n")
	for _, l := range m.Body {
		g.f("\t%s\n", l)
	}
	g.s("}\n")
}
