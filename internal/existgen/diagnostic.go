package existgen

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"
)

// DiagnosticKind classifies generation failures.
type DiagnosticKind int

const (
	// InvalidDeclarationKind is a directive attached to the wrong kind
	// of declaration.
	InvalidDeclarationKind DiagnosticKind = iota
	// InvalidArgument is a missing, malformed or unresolvable
	// directive argument.
	InvalidArgument
	// InternalError is a defect in existgen itself.
	InternalError
)

func (k DiagnosticKind) String() string {
	switch k {
	case InvalidDeclarationKind:
		return "invalid declaration kind"
	case InvalidArgument:
		return "invalid argument"
	case InternalError:
		return "internal error"
	default:
		return "unknown"
	}
}

// Diagnostic is a generation failure, positioned at the directive
// that caused it.
type Diagnostic struct {
	Pos     token.Position
	Kind    DiagnosticKind
	Message string
	// Err is the underlying error of an InternalError.
	Err error
}

func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() || d.Pos.Filename != "" {
		return fmt.Sprintf("%s: %s", d.Pos, d.Message)
	}
	return d.Message
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is a list of generation failures from several
// directives.
type Diagnostics []*Diagnostic

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

func invalidDeclarationKind(d Declaration, want DeclKind) error {
	return &Diagnostic{
		Kind:    InvalidDeclarationKind,
		Message: fmt.Sprintf("directive must be attached to an %s declaration, %s is a %s", want, d.Name(), d.Kind()),
	}
}

func invalidArgument(msg string, args ...any) error {
	return &Diagnostic{
		Kind:    InvalidArgument,
		Message: fmt.Sprintf(msg, args...),
	}
}

// diagnose returns err as a Diagnostic positioned at pos. Errors that
// are not already diagnostics are internal errors.
func diagnose(pos token.Position, err error) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		ret := *d
		ret.Pos = pos
		return &ret
	}
	return &Diagnostic{
		Pos:     pos,
		Kind:    InternalError,
		Message: fmt.Sprintf("internal error: %v", err),
		Err:     err,
	}
}
