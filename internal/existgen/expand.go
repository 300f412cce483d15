package existgen

import (
	"fmt"
	"go/token"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Shape is a complete generated declaration: a type, its package
// variables, its members and its conformance checks.
type Shape struct {
	Signature
	Doc     []string
	Vars    []Var
	Members []Member
}

// Var is a generated package variable.
type Var struct {
	Name  string
	Doc   []string
	Value string
}

// Attribute is one directive found in source or in a definition file.
type Attribute struct {
	Pos   token.Position
	Macro string
	Decl  Declaration
	Args  Arguments
}

// Expand returns the wrappers that the capability macro sel generates
// for d, one per variant set. Either all wrappers are returned or
// none.
func Expand(d Declaration, args Arguments, sel Selection) ([]*Shape, error) {
	var ret []*Shape
	seen := map[string]bool{}
	for _, vs := range AllVariants() {
		req, err := Resolve(d, args, sel, vs)
		if err != nil {
			return nil, err
		}
		sig := SynthesizeSignature(req)
		if seen[sig.TypeName] {
			return nil, errors.AssertionFailedf("variants of %s both named %s", sel.Macro(), sig.TypeName)
		}
		seen[sig.TypeName] = true
		ret = append(ret, &Shape{
			Signature: sig,
			Doc:       describe(req, sig),
			Members:   SynthesizeMembers(req),
		})
	}
	return ret, nil
}

func describe(r Request, sig Signature) []string {
	var ret []string
	switch {
	case sig.Sequence && sig.Optional:
		ret = append(ret, fmt.Sprintf("%s wraps an optional sequence T of %s values.", sig.TypeName, r.Protocol))
	case sig.Sequence:
		ret = append(ret, fmt.Sprintf("%s wraps a sequence T of %s values.", sig.TypeName, r.Protocol))
	case sig.Optional:
		ret = append(ret, fmt.Sprintf("%s wraps an optional value of type %s.", sig.TypeName, r.Protocol))
	default:
		ret = append(ret, fmt.Sprintf("%s wraps a value of type %s.", sig.TypeName, r.Protocol))
	}
	if sig.Optional {
		ret = append(ret, "A nil wrapped value is absent.")
	}

	switch {
	case r.Selection.Equality == EqualityNone:
	case sig.Sequence:
		ret = append(ret, "Sequences are equal if their elements are equal, in order.")
	default:
		ret = append(ret, "Values are equal if they have the same dynamic type and equal values.")
	}
	if r.Selection.Equality == Hashable {
		ret = append(ret, "Hash is consistent with Equal.")
	}

	switch r.Selection.Coding {
	case Decodable:
		ret = append(ret, "Values are decoded by Coding.")
	case Encodable:
		ret = append(ret, "Values are encoded by Coding.")
	case Codable:
		ret = append(ret, "Values are decoded and encoded by Coding.")
	}
	return ret
}

// Generate expands one directive. Failures are returned as a
// *Diagnostic positioned at the directive.
func Generate(a Attribute) ([]*Shape, error) {
	var (
		shapes []*Shape
		err    error
	)
	if a.Macro == RegistryMacro {
		var sh *Shape
		sh, err = GenerateRegistry(a.Decl, a.Args)
		if err == nil {
			shapes = []*Shape{sh}
		}
	} else if sel, ok := LookupMacro(a.Macro); ok {
		shapes, err = Expand(a.Decl, a.Args, sel)
	} else {
		err = invalidArgument("unknown directive %q", a.Macro)
	}
	if err != nil {
		d := diagnose(a.Pos, err)
		Logger().Debug("directive failed",
			zap.Stringer("pos", a.Pos),
			zap.String("macro", a.Macro),
			zap.Stringer("kind", d.Kind))
		return nil, d
	}

	Logger().Debug("expanded directive",
		zap.Stringer("pos", a.Pos),
		zap.String("macro", a.Macro),
		zap.String("declaration", a.Decl.Name()),
		zap.Int("types", len(shapes)))
	return shapes, nil
}

// GenerateFile expands attrs and renders the result as one file of
// package pkgName. If any directive fails, GenerateFile returns
// Diagnostics listing every failure and no source.
func GenerateFile(pkgName string, attrs []Attribute) ([]byte, error) {
	var (
		shapes []*Shape
		diags  Diagnostics
	)
	for _, a := range attrs {
		shs, err := Generate(a)
		if err != nil {
			var d *Diagnostic
			if !errors.As(err, &d) {
				d = diagnose(a.Pos, err)
			}
			diags = append(diags, d)
			continue
		}
		shapes = append(shapes, shs...)
	}
	if len(diags) > 0 {
		return nil, diags
	}
	return File(pkgName, shapes)
}
