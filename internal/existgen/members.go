package existgen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Receiver is the receiver kind of a generated member.
type Receiver int

const (
	// NoReceiver members are package-level functions, such as
	// constructors.
	NoReceiver Receiver = iota
	ValueReceiver
	PointerReceiver
)

// Member is a generated function or method.
type Member struct {
	Name     string
	Doc      []string
	Receiver Receiver
	Params   string
	Results  string
	// Body holds the statements of the member, one per line,
	// indented relative to the function body.
	Body []string
}

// SynthesizeMembers returns the members of the wrapper for r, in
// declaration order.
func SynthesizeMembers(r Request) []Member {
	sig := SynthesizeSignature(r)
	b := memberBuilder{r: r, sig: sig}
	b.storage()
	if r.Selection.Equality != EqualityNone {
		b.equality()
	}
	if r.Selection.Equality == Hashable {
		b.hash()
	}
	if r.Selection.Coding.Decodes() {
		b.decode()
	}
	if r.Selection.Coding.Encodes() {
		b.encode()
	}
	if r.Variants.Optional() {
		b.optionalSupport()
	}
	return b.out
}

type memberBuilder struct {
	r   Request
	sig Signature
	out []Member
}

func (b *memberBuilder) add(m Member) {
	b.out = append(b.out, m)
}

// scalar returns the scalar wrapper of the same capabilities, which
// sequence wrappers use to decode and encode their elements.
func (b *memberBuilder) scalar() string {
	ret := b.r.ident(b.r.Selection.Prefix() + b.r.Protocol)
	if b.r.Selection.Coding != CodingNone {
		ret += "[Coding]"
	}
	return ret
}

// scalarConstructor returns the constructor of [memberBuilder.scalar].
func (b *memberBuilder) scalarConstructor() string {
	ret := constructorName(b.r.Access, b.r.Selection.Prefix()+b.r.Protocol)
	if b.r.Selection.Coding != CodingNone {
		ret += "[Coding]"
	}
	return ret
}

func constructorName(a Access, typeName string) string {
	r, n := utf8.DecodeRuneInString(typeName)
	return identFor(a, "New"+string(unicode.ToUpper(r))+typeName[n:])
}

func (b *memberBuilder) storage() {
	sig := b.sig
	ctor := constructorName(b.r.Access, sig.TypeName)
	b.add(Member{
		Name:    ctor,
		Doc:     []string{fmt.Sprintf("%s returns a new wrapper holding v.", ctor)},
		Params:  "v " + sig.WrappedType,
		Results: sig.Instance(),
		Body:    []string{"return " + sig.Instance() + "{wrappedValue: v}"},
	})
	b.add(Member{
		Name:     "WrappedValue",
		Doc:      []string{"WrappedValue returns the wrapped value."},
		Receiver: ValueReceiver,
		Results:  sig.WrappedType,
		Body:     []string{"return x.wrappedValue"},
	})
	if b.r.Variants.Mutable() {
		b.add(Member{
			Name:     "SetWrappedValue",
			Doc:      []string{"SetWrappedValue replaces the wrapped value with v."},
			Receiver: PointerReceiver,
			Params:   "v " + sig.WrappedType,
			Body:     []string{"x.wrappedValue = v"},
		})
	}
	b.add(Member{
		Name:     "ProjectedValue",
		Doc:      []string{"ProjectedValue returns the wrapper itself."},
		Receiver: ValueReceiver,
		Results:  sig.Instance(),
		Body:     []string{"return x"},
	})
}

func (b *memberBuilder) equality() {
	if !b.r.Variants.Sequence() {
		b.add(Member{
			Name:     "EquatableValue",
			Receiver: ValueReceiver,
			Results:  "any",
			Body:     []string{"return x.wrappedValue"},
		})
		b.add(Member{
			Name:     "Equal",
			Receiver: ValueReceiver,
			Params:   "other " + pkg + "EquatableSupport",
			Results:  "bool",
			Body:     []string{"return " + pkg + "Equal(x, other)"},
		})
		return
	}

	view := "SequenceOf"
	if b.r.Variants.Optional() {
		view = "OptionalSequenceOf"
	}
	b.add(Member{
		Name:     "EquatableSequence",
		Receiver: ValueReceiver,
		Results:  pkg + "SequenceOfEquatables",
		Body:     []string{fmt.Sprintf("return %s%s[T, %s](x.wrappedValue)", pkg, view, b.r.Protocol)},
	})
	b.add(Member{
		Name:     "Equal",
		Receiver: ValueReceiver,
		Params:   "other " + pkg + "EquatableSequenceSupport",
		Results:  "bool",
		Body:     []string{"return " + pkg + "EqualSequences(x, other)"},
	})
}

func (b *memberBuilder) hash() {
	var present, absent []string
	if b.r.Variants.Sequence() {
		present = []string{
			pkg + "CombineType[T](h)",
			"for _, v := range x.wrappedValue {",
			"\th.CombineTypeOf(v)",
			"\th.Combine(v)",
			"}",
		}
		absent = []string{pkg + "CombineAbsent[T](h)"}
	} else {
		present = []string{
			"h.CombineTypeOf(x.wrappedValue)",
			"h.Combine(x.wrappedValue)",
		}
		absent = []string{pkg + "CombineAbsent[" + b.r.Protocol + "](h)"}
	}

	body := present
	if b.r.Variants.Optional() {
		body = []string{"if x.wrappedValue != nil {"}
		body = append(body, indent(present)...)
		body = append(body, "} else {")
		body = append(body, indent(absent)...)
		body = append(body, "}")
	}
	b.add(Member{
		Name:     "Hash",
		Receiver: ValueReceiver,
		Params:   "h *" + pkg + "Hasher",
		Body:     body,
	})
}

func (b *memberBuilder) decode() {
	var body []string
	if b.r.Variants.Optional() {
		body = append(body,
			"if "+pkg+"IsNull(data) {",
			"\tx.wrappedValue = nil",
			"\treturn nil",
			"}",
		)
	}
	if b.r.Variants.Sequence() {
		body = append(body,
			"elems, err := "+pkg+"SplitArray(data)",
			"if err != nil {",
			"\treturn err",
			"}",
			"values := make(T, 0, len(elems))",
			"for _, elem := range elems {",
			"\tvar v "+b.scalar(),
			"\tif err := v.UnmarshalJSON(elem); err != nil {",
			"\t\treturn err",
			"\t}",
			"\tvalues = append(values, v.WrappedValue())",
			"}",
			"x.wrappedValue = values",
			"return nil",
		)
	} else {
		body = append(body,
			"var coding Coding",
			"v, err := coding.Decode(data)",
			"if err != nil {",
			"\treturn err",
			"}",
			"x.wrappedValue = v",
			"return nil",
		)
	}
	b.add(Member{
		Name:     "UnmarshalJSON",
		Receiver: PointerReceiver,
		Params:   "data []byte",
		Results:  "error",
		Body:     body,
	})
}

func (b *memberBuilder) encode() {
	var body []string
	if b.r.Variants.Optional() {
		body = append(body,
			"if x.wrappedValue == nil {",
			"\treturn "+pkg+"Null(), nil",
			"}",
		)
	}
	if b.r.Variants.Sequence() {
		body = append(body,
			"elems := make([][]byte, 0, len(x.wrappedValue))",
			"for _, v := range x.wrappedValue {",
			"\tbs, err := "+b.scalarConstructor()+"(v).MarshalJSON()",
			"\tif err != nil {",
			"\t\treturn nil, err",
			"\t}",
			"\telems = append(elems, bs)",
			"}",
			"return "+pkg+"JoinArray(elems), nil",
		)
	} else {
		body = append(body,
			"var coding Coding",
			"return coding.Encode(x.wrappedValue)",
		)
	}
	b.add(Member{
		Name:     "MarshalJSON",
		Receiver: ValueReceiver,
		Results:  "([]byte, error)",
		Body:     body,
	})
}

func (b *memberBuilder) optionalSupport() {
	coding := b.r.Selection.Coding
	if coding.Decodes() {
		b.add(Member{
			Name:     "DecodeAbsent",
			Receiver: PointerReceiver,
			Body:     []string{"x.wrappedValue = nil"},
		})
	}
	if coding.Encodes() {
		b.add(Member{
			Name:     "IsAbsent",
			Receiver: ValueReceiver,
			Results:  "bool",
			Body:     []string{"return x.wrappedValue == nil"},
		})
		b.add(Member{
			Name:     "ShouldEncodeNil",
			Receiver: ValueReceiver,
			Results:  "bool",
			Body: []string{
				"var coding Coding",
				"return coding.ShouldEncodeNil()",
			},
		})
		b.add(Member{
			Name:     "IsZero",
			Doc:      []string{"IsZero reports whether the omitzero option of encoding/json omits the wrapper."},
			Receiver: ValueReceiver,
			Results:  "bool",
			Body:     []string{"return x.IsAbsent() && !x.ShouldEncodeNil()"},
		})
	}
}

func indent(lines []string) []string {
	ret := make([]string, len(lines))
	for i, l := range lines {
		ret[i] = "\t" + l
	}
	return ret
}
