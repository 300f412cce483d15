package existgen

import "strings"

const pkg = "existential."

// Constraint is the constraint on one generic parameter.
type Constraint struct {
	Param string
	Bound string
}

// Conformance is an interface from the existential package that a
// wrapper implements.
type Conformance struct {
	Interface string
	// Pointer is true if only pointers to the wrapper implement
	// Interface.
	Pointer bool
}

// Signature is the outside of a generated wrapper: its name,
// generics, conformances and wrapped type.
type Signature struct {
	TypeName      string
	Protocol      string
	GenericParams []string
	Constraints   []Constraint
	Conformances  []Conformance
	// WrappedType is the Go type of the wrapped value, "T" for
	// sequences or the protocol name. Empty if the type wraps
	// nothing.
	WrappedType string
	// Optional is true if the wrapped value may be absent.
	Optional bool
	Sequence bool
}

// SynthesizeSignature returns the signature of the wrapper for r.
func SynthesizeSignature(r Request) Signature {
	sel, vs := r.Selection, r.Variants
	ret := Signature{
		TypeName: r.ident(sel.Prefix() + variantInfix(sel.Coding, vs) + r.Protocol),
		Protocol: r.Protocol,
		Optional: vs.Optional(),
		Sequence: vs.Sequence(),
	}

	if vs.Sequence() {
		ret.GenericParams = append(ret.GenericParams, "T")
		ret.Constraints = append(ret.Constraints, Constraint{"T", pkg + sequenceToken(sel.Coding) + "[" + r.Protocol + "]"})
		ret.WrappedType = "T"
	} else {
		ret.WrappedType = r.Protocol
	}
	if sel.Coding != CodingNone {
		ret.GenericParams = append(ret.GenericParams, "Coding")
		ret.Constraints = append(ret.Constraints, Constraint{"Coding", pkg + sel.Coding.Provider() + "[" + r.Protocol + "]"})
	}

	if sel.Equality != EqualityNone {
		if vs.Sequence() {
			ret.Conformances = append(ret.Conformances, Conformance{Interface: pkg + "EquatableSequenceSupport"})
		} else {
			ret.Conformances = append(ret.Conformances, Conformance{Interface: pkg + "EquatableSupport"})
		}
	}
	if sel.Equality == Hashable {
		ret.Conformances = append(ret.Conformances, Conformance{Interface: pkg + "Hashable"})
	}
	if sel.Coding != CodingNone {
		ret.Conformances = append(ret.Conformances, Conformance{pkg + sel.Coding.Token(), sel.Coding.Decodes()})
	}
	if vs.Optional() && sel.Coding.Decodes() {
		ret.Conformances = append(ret.Conformances, Conformance{pkg + "OptionalDecodingSupport", true})
	}
	if vs.Optional() && sel.Coding.Encodes() {
		ret.Conformances = append(ret.Conformances, Conformance{Interface: pkg + "OptionalEncodingSupport"})
	}

	return ret
}

func variantInfix(c Coding, vs Variants) string {
	var ret string
	if vs.Mutable() {
		ret += "Mutable"
	}
	if vs.Optional() {
		ret += "Optional"
	}
	if vs.Sequence() {
		ret += sequenceToken(c) + "Of"
	}
	return ret
}

// sequenceToken returns the container constraint sequence wrappers
// with coding c need. Decoding appends to the container, the other
// capabilities only iterate it.
func sequenceToken(c Coding) string {
	if c.Decodes() {
		return "RangeReplaceableCollection"
	}
	return "Sequence"
}

// TypeParams returns the type parameter list of the wrapper,
// including constraints, or "" if it is not generic.
func (s Signature) TypeParams() string {
	if len(s.Constraints) == 0 {
		return ""
	}
	ps := make([]string, len(s.Constraints))
	for i, c := range s.Constraints {
		ps[i] = c.Param + " " + c.Bound
	}
	return "[" + strings.Join(ps, ", ") + "]"
}

// TypeArgs returns the type argument list that instantiates the
// wrapper with its own type parameters, or "" if it is not generic.
func (s Signature) TypeArgs() string {
	if len(s.GenericParams) == 0 {
		return ""
	}
	return "[" + strings.Join(s.GenericParams, ", ") + "]"
}

// Instance returns the wrapper type instantiated with its own type
// parameters.
func (s Signature) Instance() string {
	return s.TypeName + s.TypeArgs()
}

// WrappedTypeNotation returns the wrapped type in the notation used
// to describe wrappers: a trailing "?" marks an optional value.
func (s Signature) WrappedTypeNotation() string {
	if s.Optional {
		return s.WrappedType + "?"
	}
	return s.WrappedType
}
