package existgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"
)

// DirectivePrefix starts every directive comment.
const DirectivePrefix = "//existential:"

// ParseFile parses the Go file filename and returns its package name
// and directives. If src is non-nil it is used instead of the file's
// contents, as in [parser.ParseFile].
func ParseFile(fset *token.FileSet, filename string, src any) (string, []Attribute, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return "", nil, errors.Wrapf(err, "parsing %s", filename)
	}
	attrs, err := ScanFile(fset, f)
	return f.Name.Name, attrs, err
}

// ScanFile returns the directives attached to the top-level
// declarations of f, in source order.
//
// Directives with malformed arguments are reported together as
// Diagnostics, after all other directives have been scanned.
func ScanFile(fset *token.FileSet, f *ast.File) ([]Attribute, error) {
	s := scanner{fset: fset}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			s.doc(d.Doc, NewDeclaration(DeclFunc, d.Name.Name))
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				decl := specDeclaration(d.Tok, spec)
				if decl == nil {
					continue
				}
				if !d.Lparen.IsValid() {
					s.doc(d.Doc, decl)
					continue
				}
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					s.doc(spec.Doc, decl)
				case *ast.ValueSpec:
					s.doc(spec.Doc, decl)
				}
			}
		}
	}
	if len(s.diags) > 0 {
		return s.attrs, s.diags
	}
	return s.attrs, nil
}

type scanner struct {
	fset  *token.FileSet
	attrs []Attribute
	diags Diagnostics
}

func (s *scanner) doc(cg *ast.CommentGroup, decl Declaration) {
	if cg == nil {
		return
	}
	for _, c := range cg.List {
		rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
		if !ok {
			continue
		}
		pos := s.fset.Position(c.Pos())
		macro, argText, _ := strings.Cut(strings.TrimSpace(rest), " ")
		args, err := ParseArguments(argText)
		if err != nil {
			s.diags = append(s.diags, diagnose(pos, err))
			continue
		}
		s.attrs = append(s.attrs, Attribute{
			Pos:   pos,
			Macro: macro,
			Decl:  decl,
			Args:  args,
		})
	}
}

func specDeclaration(tok token.Token, spec ast.Spec) Declaration {
	switch spec := spec.(type) {
	case *ast.TypeSpec:
		switch spec.Type.(type) {
		case *ast.InterfaceType:
			if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
				return NewDeclaration(DeclGenericInterface, spec.Name.Name)
			}
			return NewDeclaration(DeclInterface, spec.Name.Name)
		case *ast.StructType:
			return NewDeclaration(DeclStruct, spec.Name.Name)
		default:
			return NewDeclaration(DeclType, spec.Name.Name)
		}
	case *ast.ValueSpec:
		if len(spec.Names) == 0 {
			return nil
		}
		kind := DeclVar
		if tok == token.CONST {
			kind = DeclConst
		}
		return NewDeclaration(kind, spec.Names[0].Name)
	}
	return nil
}
