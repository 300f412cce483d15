package existgen

import (
	"slices"
	"strings"

	"github.com/creachadair/mds/mapset"
)

// Equality is the equality capability of a generated wrapper.
type Equality int

const (
	EqualityNone Equality = iota
	Equatable
	Hashable
)

// Token returns the name fragment the equality contributes to
// wrapper names.
func (e Equality) Token() string {
	switch e {
	case Equatable:
		return "Equatable"
	case Hashable:
		return "Hashable"
	default:
		return ""
	}
}

func (e Equality) String() string {
	if e == EqualityNone {
		return "none"
	}
	return e.Token()
}

// Coding is the coding capability of a generated wrapper.
type Coding int

const (
	CodingNone Coding = iota
	Decodable
	Encodable
	Codable
)

// Token returns the name fragment the coding contributes to wrapper
// names. It is also the name of the conformance in the existential
// package.
func (c Coding) Token() string {
	switch c {
	case Decodable:
		return "Decodable"
	case Encodable:
		return "Encodable"
	case Codable:
		return "Codable"
	default:
		return ""
	}
}

func (c Coding) String() string {
	if c == CodingNone {
		return "none"
	}
	return c.Token()
}

// Decodes reports whether wrappers with this capability decode.
func (c Coding) Decodes() bool { return c == Decodable || c == Codable }

// Encodes reports whether wrappers with this capability encode.
func (c Coding) Encodes() bool { return c == Encodable || c == Codable }

// Provider returns the name of the coding provider constraint in the
// existential package.
func (c Coding) Provider() string {
	switch c {
	case Decodable:
		return "DecodingProvider"
	case Encodable:
		return "EncodingProvider"
	case Codable:
		return "CodingProvider"
	default:
		return ""
	}
}

// Variant is one of the structural variations of a wrapper.
type Variant int

const (
	// Mutable wrappers can replace their value.
	Mutable Variant = iota
	// Optional wrappers may hold no value.
	Optional
	// Sequence wrappers hold a slice of values rather than one.
	Sequence
)

func (v Variant) String() string {
	switch v {
	case Mutable:
		return "mutable"
	case Optional:
		return "optional"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Variants is a set of [Variant].
type Variants struct {
	set mapset.Set[Variant]
}

// NewVariants returns the set of the given variants.
func NewVariants(vs ...Variant) Variants {
	return Variants{mapset.New(vs...)}
}

func (v Variants) Mutable() bool  { return v.set.Has(Mutable) }
func (v Variants) Optional() bool { return v.set.Has(Optional) }
func (v Variants) Sequence() bool { return v.set.Has(Sequence) }

func (v Variants) String() string {
	var ret []string
	for _, x := range []Variant{Mutable, Optional, Sequence} {
		if v.set.Has(x) {
			ret = append(ret, x.String())
		}
	}
	return "{" + strings.Join(ret, ",") + "}"
}

// AllVariants returns the eight variant sets, in the order their
// wrappers are generated.
func AllVariants() []Variants {
	return []Variants{
		NewVariants(),
		NewVariants(Mutable),
		NewVariants(Optional),
		NewVariants(Sequence),
		NewVariants(Mutable, Optional),
		NewVariants(Mutable, Sequence),
		NewVariants(Optional, Sequence),
		NewVariants(Mutable, Optional, Sequence),
	}
}

// Selection is the pair of capabilities a macro generates wrappers
// for.
type Selection struct {
	Equality Equality
	Coding   Coding
}

// Valid reports whether s selects at least one capability.
func (s Selection) Valid() bool {
	return s.Equality != EqualityNone || s.Coding != CodingNone
}

// Prefix returns the capability prefix of wrapper names,
// e.g. "HashableCodable".
func (s Selection) Prefix() string {
	return s.Equality.Token() + s.Coding.Token()
}

// Macro returns the name of the macro that generates s.
func (s Selection) Macro() string {
	return s.Prefix() + "Existential"
}

func (s Selection) String() string {
	return s.Prefix()
}

// RegistryMacro is the name of the macro that generates a type
// registry coding provider.
const RegistryMacro = "SimpleCodingProviding"

var selections = []Selection{
	{Equatable, CodingNone},
	{Hashable, CodingNone},
	{EqualityNone, Decodable},
	{EqualityNone, Encodable},
	{EqualityNone, Codable},
	{Equatable, Decodable},
	{Equatable, Encodable},
	{Equatable, Codable},
	{Hashable, Decodable},
	{Hashable, Encodable},
	{Hashable, Codable},
}

// Selections returns the eleven capability selections that have a
// macro.
func Selections() []Selection {
	return slices.Clone(selections)
}

// LookupMacro returns the selection generated by the named macro.
func LookupMacro(name string) (Selection, bool) {
	for _, s := range selections {
		if s.Macro() == name {
			return s, true
		}
	}
	return Selection{}, false
}

// Macros returns the names of all macros, including [RegistryMacro].
func Macros() []string {
	var ret []string
	for _, s := range selections {
		ret = append(ret, s.Macro())
	}
	return append(ret, RegistryMacro)
}
