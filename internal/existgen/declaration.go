package existgen

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// DeclKind classifies the declaration a directive is attached to.
type DeclKind int

const (
	DeclOther DeclKind = iota
	DeclInterface
	DeclGenericInterface
	DeclStruct
	DeclType
	DeclFunc
	DeclVar
	DeclConst
)

func (k DeclKind) String() string {
	switch k {
	case DeclInterface:
		return "interface"
	case DeclGenericInterface:
		return "generic interface"
	case DeclStruct:
		return "struct"
	case DeclType:
		return "type"
	case DeclFunc:
		return "func"
	case DeclVar:
		return "var"
	case DeclConst:
		return "const"
	default:
		return "declaration"
	}
}

// A Declaration is the source declaration a directive is attached
// to.
type Declaration interface {
	Kind() DeclKind
	Name() string
}

type decl struct {
	kind DeclKind
	name string
}

func (d decl) Kind() DeclKind { return d.kind }
func (d decl) Name() string   { return d.name }

// NewDeclaration returns a Declaration of the given kind and name.
func NewDeclaration(kind DeclKind, name string) Declaration {
	return decl{kind, name}
}

// Arguments are the label=value arguments of a directive, in the
// order they were written.
type Arguments struct {
	labels []string
	values map[string]string
}

// ParseArguments parses the space-separated label=value arguments of
// a directive. A list value may continue after a space following one
// of its commas, as in "expectedTypes=Water, Beer".
func ParseArguments(s string) (Arguments, error) {
	var ret Arguments
	for _, f := range joinLists(strings.Fields(s)) {
		label, value, ok := strings.Cut(f, "=")
		if !ok || label == "" {
			return Arguments{}, invalidArgument("malformed argument %q, want label=value", f)
		}
		if err := ret.Add(label, value); err != nil {
			return Arguments{}, err
		}
	}
	return ret, nil
}

// joinLists rejoins the fields of list values that were split after
// a comma.
func joinLists(fields []string) []string {
	var ret []string
	for _, f := range fields {
		if n := len(ret); n > 0 && (strings.HasSuffix(ret[n-1], ",") || strings.HasPrefix(f, ",")) {
			ret[n-1] += f
			continue
		}
		ret = append(ret, f)
	}
	return ret
}

// Add appends the argument label=value.
func (a *Arguments) Add(label, value string) error {
	if _, ok := a.values[label]; ok {
		return invalidArgument("duplicate argument %q", label)
	}
	if a.values == nil {
		a.values = map[string]string{}
	}
	a.labels = append(a.labels, label)
	a.values[label] = value
	return nil
}

// Labels returns the argument labels in order.
func (a Arguments) Labels() []string {
	return a.labels
}

// Named returns the raw value of the argument with the given label.
func (a Arguments) Named(label string) (string, bool) {
	v, ok := a.values[label]
	return v, ok
}

// MemberAccessList returns the comma-separated list of identifiers or
// type names given for label. Entries are trimmed of spaces but
// otherwise returned as written, including empty ones.
func (a Arguments) MemberAccessList(label string) ([]string, bool) {
	v, ok := a.values[label]
	if !ok {
		return nil, false
	}
	ret := strings.Split(v, ",")
	for i := range ret {
		ret[i] = strings.TrimSpace(ret[i])
	}
	return ret, true
}

// checkLabels returns an error if a has arguments other than allowed.
func (a Arguments) checkLabels(allowed ...string) error {
	for _, l := range a.labels {
		if !slices.Contains(allowed, l) {
			return invalidArgument("unknown argument %q", l)
		}
	}
	return nil
}

// checkInterface returns an error unless d is a non-generic interface.
func checkInterface(d Declaration) error {
	if d == nil {
		return errors.AssertionFailedf("no declaration provided")
	}
	if d.Kind() != DeclInterface {
		return invalidDeclarationKind(d, DeclInterface)
	}
	return nil
}
