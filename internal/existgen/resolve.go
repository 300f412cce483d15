package existgen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Access is the visibility requested for generated declarations.
type Access int

const (
	// AccessDefault generates declarations with their natural,
	// exported, names.
	AccessDefault Access = iota
	AccessPublic
	AccessPackage
	AccessInternal
	// AccessFilePrivate and AccessPrivate generate unexported names.
	AccessFilePrivate
	AccessPrivate
)

var accessNames = map[string]Access{
	"default":     AccessDefault,
	"public":      AccessPublic,
	"package":     AccessPackage,
	"internal":    AccessInternal,
	"fileprivate": AccessFilePrivate,
	"private":     AccessPrivate,
}

func (a Access) String() string {
	for k, v := range accessNames {
		if v == a {
			return k
		}
	}
	return "default"
}

// Exported reports whether declarations with this access are
// exported from their package.
func (a Access) Exported() bool {
	return a != AccessFilePrivate && a != AccessPrivate
}

// ParseAccess parses an access modifier argument. A leading dot is
// accepted, so ".public" and "public" are the same.
func ParseAccess(s string) (Access, error) {
	if a, ok := accessNames[strings.TrimPrefix(s, ".")]; ok {
		return a, nil
	}
	return AccessDefault, invalidArgument("unknown access modifier %q", s)
}

const accessModifierArg = "accessModifier"

func resolveAccess(args Arguments) (Access, error) {
	s, ok := args.Named(accessModifierArg)
	if !ok {
		return AccessDefault, nil
	}
	return ParseAccess(s)
}

// Request is a fully resolved request to generate one wrapper.
type Request struct {
	// Protocol is the name of the wrapped interface, exactly as
	// declared.
	Protocol  string
	Access    Access
	Selection Selection
	Variants  Variants
}

// Resolve validates a directive and returns the request to generate
// the wrapper for one variant set.
func Resolve(d Declaration, args Arguments, sel Selection, vs Variants) (Request, error) {
	if err := checkInterface(d); err != nil {
		return Request{}, err
	}
	if err := args.checkLabels(accessModifierArg); err != nil {
		return Request{}, err
	}
	access, err := resolveAccess(args)
	if err != nil {
		return Request{}, err
	}
	if !sel.Valid() {
		return Request{}, errors.AssertionFailedf("capability selection %+v selects nothing", sel)
	}
	return Request{
		Protocol:  d.Name(),
		Access:    access,
		Selection: sel,
		Variants:  vs,
	}, nil
}

// ident returns name adjusted to the request's access.
func (r Request) ident(name string) string {
	return identFor(r.Access, name)
}

func identFor(a Access, name string) string {
	if a.Exported() {
		return name
	}
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[n:]
}
