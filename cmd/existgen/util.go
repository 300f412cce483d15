package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/danderson/existential/internal/existgen"
)

type indenter struct {
	w          io.Writer
	prefix     string
	indentNext bool
}

func (i *indenter) s(msg string) {
	io.WriteString(i, msg+"\n")
}

func (i *indenter) f(msg string, args ...any) {
	fmt.Fprintf(i, msg+"\n", args...)
}

func (i *indenter) Write(bs []byte) (int, error) {
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			_, err := io.WriteString(i.w, i.prefix)
			if err != nil {
				return ret, err
			}
		}

		wr := bs
		idx := bytes.IndexByte(bs, '\n')
		if idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			bs = nil
		}

		n, err := i.w.Write(wr)
		ret += n
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}

// memberSignature returns m in the form it is listed by the shapes
// command, with a leading marker for its receiver kind.
func memberSignature(m existgen.Member) string {
	var ret strings.Builder
	switch m.Receiver {
	case existgen.ValueReceiver:
		ret.WriteString("(x) ")
	case existgen.PointerReceiver:
		ret.WriteString("(*x) ")
	}
	fmt.Fprintf(&ret, "%s(%s)", m.Name, m.Params)
	if m.Results != "" {
		ret.WriteString(" " + m.Results)
	}
	return ret.String()
}
