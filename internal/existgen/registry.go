package existgen

import (
	"fmt"
	"go/token"
	"strings"
)

const expectedTypesArg = "expectedTypes"

// GenerateRegistry returns the SimpleCoding provider for the
// interface d. The provider decodes and encodes exactly the types
// listed in the expectedTypes argument.
func GenerateRegistry(d Declaration, args Arguments) (*Shape, error) {
	if err := checkInterface(d); err != nil {
		return nil, err
	}
	if err := args.checkLabels(accessModifierArg, expectedTypesArg); err != nil {
		return nil, err
	}
	access, err := resolveAccess(args)
	if err != nil {
		return nil, err
	}
	types, ok := args.MemberAccessList(expectedTypesArg)
	if !ok {
		return nil, invalidArgument("missing required argument %q", expectedTypesArg)
	}

	protocol := d.Name()
	keys := map[string]string{}
	entries := make([]string, 0, len(types))
	for _, typ := range types {
		key, err := discriminator(typ)
		if err != nil {
			return nil, err
		}
		if prev, ok := keys[key]; ok {
			if prev == typ {
				return nil, invalidArgument("type %s listed twice in %q", typ, expectedTypesArg)
			}
			return nil, invalidArgument("types %s and %s have the same type key %q", prev, typ, key)
		}
		keys[key] = typ
		entries = append(entries, fmt.Sprintf("\t%sExpect(%q, func(v %s) %s { return v }),", pkg, key, typ, protocol))
	}

	name := identFor(access, protocol+"SimpleCoding")
	table := identFor(AccessPrivate, name+"Types")
	return &Shape{
		Signature: Signature{
			TypeName:     name,
			Protocol:     protocol,
			Conformances: []Conformance{{Interface: pkg + "CodingProvider[" + protocol + "]"}},
		},
		Doc: []string{
			fmt.Sprintf("%s decodes and encodes %s values as JSON objects", name, protocol),
			fmt.Sprintf("with their type name under the %q key.", "__type"),
			fmt.Sprintf("Supported types: %s.", strings.Join(types, ", ")),
		},
		Vars: []Var{{
			Name:  table,
			Value: pkg + "NewRegistry(\n" + strings.Join(entries, "\n") + "\n)",
		}},
		Members: []Member{
			{
				Name:     "ShouldEncodeNil",
				Receiver: ValueReceiver,
				Results:  "bool",
				Body:     []string{"return false"},
			},
			{
				Name:     "Encode",
				Receiver: ValueReceiver,
				Params:   "v " + protocol,
				Results:  "([]byte, error)",
				Body:     []string{"return " + table + ".Encode(v)"},
			},
			{
				Name:     "Decode",
				Receiver: ValueReceiver,
				Params:   "data []byte",
				Results:  "(" + protocol + ", error)",
				Body:     []string{"return " + table + ".Decode(data)"},
			},
		},
	}, nil
}

// discriminator returns the type key for a listed type: its name
// without pointer. Listed types must be declared in the package of the
// interface, since the generated file imports nothing else.
func discriminator(typ string) (string, error) {
	name := strings.TrimPrefix(typ, "*")
	if strings.Contains(name, ".") {
		return "", invalidArgument("%q in %q is not declared in this package", typ, expectedTypesArg)
	}
	if !token.IsIdentifier(name) {
		return "", invalidArgument("%q is not a type name in %q", typ, expectedTypesArg)
	}
	return name, nil
}
