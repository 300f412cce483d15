package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/danderson/existential/internal/existgen"
	"github.com/kr/pretty"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

var globalArgs struct {
	Verbose bool `flag:"verbose,Log generation details to stderr"`
}

func main() {
	root := &command.C{
		Name:     "existgen",
		Usage:    "command args...",
		Help:     "Generate existential wrappers for annotated Go interfaces.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "generate",
				Usage: "generate [file.go...]",
				Help: `Generate wrappers for the directives in the given Go files.

Each input file with directives produces one output file next to it,
named after the input with --suffix replacing ".go". With --out, all
inputs must belong to one package and produce a single output file.

With no arguments, generates for $GOFILE, so that a bare
//go:generate line works.`,
				SetFlags: command.Flags(flax.MustBind, &generateArgs),
				Run:      logged(runGenerate),
			},
			{
				Name:     "packages",
				Usage:    "packages pattern...",
				Help:     "Generate wrappers for every package matching the given patterns.",
				SetFlags: command.Flags(flax.MustBind, &generateArgs),
				Run:      logged(runPackages),
			},
			{
				Name:  "definitions",
				Usage: "definitions file.{yaml,toml}",
				Help: `Generate wrappers from a definitions file.

A definitions file lists declarations and their directives, for
interfaces that cannot carry directive comments. The output is
written to --out, or to stdout.`,
				SetFlags: command.Flags(flax.MustBind, &generateArgs),
				Run:      logged(command.Adapt(runDefinitions)),
			},
			{
				Name:     "shapes",
				Usage:    "shapes macro interface",
				Help:     "Print the types a directive generates for an interface.",
				SetFlags: command.Flags(flax.MustBind, &shapesArgs),
				Run:      logged(command.Adapt(runShapes)),
			},
			{
				Name:  "macros",
				Usage: "macros",
				Help:  "List the directives existgen understands.",
				Run:   runMacros,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	env := root.NewEnv(nil)
	command.RunOrFail(env, os.Args[1:])
}

// logged returns run, preceded by logger setup according to the
// global flags.
func logged(run func(*command.Env) error) func(*command.Env) error {
	return func(env *command.Env) error {
		if globalArgs.Verbose {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer l.Sync()
			existgen.SetLogger(l)
		}
		return run(env)
	}
}

var generateArgs struct {
	Suffix string `flag:"suffix,default=_existential.go,Suffix of generated files"`
	Out    string `flag:"out,Output file path"`
}

func outputPath(input string) string {
	return strings.TrimSuffix(input, ".go") + generateArgs.Suffix
}

func isGenerated(path string) bool {
	return strings.HasSuffix(path, generateArgs.Suffix)
}

// fileSet is the directives of one package, gathered from one or
// more files.
type fileSet struct {
	pkg   string
	attrs []existgen.Attribute
}

func (s *fileSet) add(pkg string, attrs []existgen.Attribute) error {
	if s.pkg != "" && s.pkg != pkg {
		return fmt.Errorf("inputs belong to packages %s and %s", s.pkg, pkg)
	}
	s.pkg = pkg
	s.attrs = append(s.attrs, attrs...)
	return nil
}

func (s *fileSet) write(path string) error {
	if len(s.attrs) == 0 {
		return nil
	}
	src, err := existgen.GenerateFile(s.pkg, s.attrs)
	if err != nil {
		return reportDiagnostics(err)
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("writing generated code: %w", err)
	}
	fmt.Printf("Wrote %d directives to %s\n", len(s.attrs), path)
	return nil
}

// reportDiagnostics prints the generation failures in err, if it
// holds any, and returns a summary error.
func reportDiagnostics(err error) error {
	var diags existgen.Diagnostics
	if !errors.As(err, &diags) {
		return err
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	return fmt.Errorf("%d directives failed", len(diags))
}

func runGenerate(env *command.Env) error {
	inputs := env.Args
	if len(inputs) == 0 {
		gofile := os.Getenv("GOFILE")
		if gofile == "" {
			return env.Usagef("generate requires at least one file, or $GOFILE to be set.")
		}
		inputs = []string{gofile}
	}

	fset := token.NewFileSet()
	var all fileSet
	for _, input := range inputs {
		if isGenerated(input) {
			continue
		}
		pkg, attrs, err := existgen.ParseFile(fset, input, nil)
		if err != nil {
			return reportDiagnostics(err)
		}
		if generateArgs.Out != "" {
			if err := all.add(pkg, attrs); err != nil {
				return err
			}
			continue
		}
		one := fileSet{pkg, attrs}
		if err := one.write(outputPath(input)); err != nil {
			return fmt.Errorf("generating for %s: %w", input, err)
		}
	}
	if generateArgs.Out != "" {
		return all.write(generateArgs.Out)
	}
	return nil
}

func runPackages(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("packages requires at least one package pattern.")
	}
	cfg := &packages.Config{
		Context: env.Context(),
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, env.Args...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return errors.New("packages contain errors")
	}

	for _, pkg := range pkgs {
		var set fileSet
		for i, f := range pkg.Syntax {
			if i < len(pkg.GoFiles) && isGenerated(pkg.GoFiles[i]) {
				continue
			}
			attrs, err := existgen.ScanFile(pkg.Fset, f)
			if err != nil {
				return reportDiagnostics(err)
			}
			if err := set.add(pkg.Name, attrs); err != nil {
				return err
			}
		}
		if len(set.attrs) == 0 || len(pkg.GoFiles) == 0 {
			continue
		}
		out := filepath.Join(filepath.Dir(pkg.GoFiles[0]), pkg.Name+generateArgs.Suffix)
		if err := set.write(out); err != nil {
			return fmt.Errorf("generating for %s: %w", pkg.PkgPath, err)
		}
	}
	return nil
}

func runDefinitions(env *command.Env, path string) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	defs, err := existgen.ReadDefinitions(path, bs)
	if err != nil {
		return reportDiagnostics(err)
	}
	set := fileSet{defs.Package, defs.Attributes}
	return set.write(generateArgs.Out)
}

var shapesArgs struct {
	Raw    bool   `flag:"raw,Dump the synthesized shapes verbatim"`
	Access string `flag:"access,Access modifier for the generated types"`
}

func runShapes(env *command.Env, macro, iface string) error {
	var args existgen.Arguments
	if shapesArgs.Access != "" {
		if err := args.Add("accessModifier", shapesArgs.Access); err != nil {
			return err
		}
	}
	shapes, err := existgen.Generate(existgen.Attribute{
		Macro: macro,
		Decl:  existgen.NewDeclaration(existgen.DeclInterface, iface),
		Args:  args,
	})
	if err != nil {
		return err
	}

	if shapesArgs.Raw {
		for _, sh := range shapes {
			fmt.Printf("%# v\n", pretty.Formatter(sh))
		}
		return nil
	}
	out := indenter{w: os.Stdout}
	for i, sh := range shapes {
		if i > 0 {
			out.indent(0)
			out.s("")
		}
		printShape(&out, sh)
	}
	return nil
}

func runMacros(env *command.Env) error {
	var buf bytes.Buffer
	for _, m := range existgen.Macros() {
		fmt.Fprintf(&buf, "%s%s\n", existgen.DirectivePrefix, m)
	}
	_, err := os.Stdout.Write(buf.Bytes())
	return err
}

func printShape(out *indenter, sh *existgen.Shape) {
	out.indent(0)
	out.f("%s%s", sh.TypeName, sh.TypeParams())
	out.indent(1)
	if sh.WrappedType != "" {
		out.f("wraps %s", sh.WrappedTypeNotation())
	}
	if len(sh.Conformances) > 0 {
		var cs []string
		for _, c := range sh.Conformances {
			if c.Pointer {
				cs = append(cs, "*"+c.Interface)
			} else {
				cs = append(cs, c.Interface)
			}
		}
		out.f("implements %s", strings.Join(cs, ", "))
	}
	// Constructors first, then methods by name.
	ms := slices.Clone(sh.Members)
	slices.SortStableFunc(ms, func(a, b existgen.Member) int {
		if ca, cb := a.Receiver == existgen.NoReceiver, b.Receiver == existgen.NoReceiver; ca != cb {
			if ca {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	for _, m := range ms {
		out.s(memberSignature(m))
	}
}
