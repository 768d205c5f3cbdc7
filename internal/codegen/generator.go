// Package codegen renders a parsed registry into Go source declaring the
// constant entry-point table the loader dispatches from.
package codegen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/conduit-lang/cldispatch/internal/registry"
)

// RegistryPath is the import path of the registry package. Tables generated
// into that package refer to its types unqualified.
const RegistryPath = "github.com/conduit-lang/cldispatch/internal/registry"

// Options controls the generated file.
type Options struct {
	// Package is the package name of the generated file.
	Package string
	// ImportPath is the import path of the generated file's package.
	ImportPath string
	// VarName is the name of the generated slice variable.
	VarName string
	// Source is recorded in the header comment, typically the XML path.
	Source string
}

// DefaultOptions generates the table served by registry.Builtin.
func DefaultOptions() Options {
	return Options{
		Package:    "registry",
		ImportPath: RegistryPath,
		VarName:    "generatedEntryPoints",
	}
}

// Generator turns registries into Go source.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator, filling unset options from
// DefaultOptions.
func NewGenerator(opts Options) *Generator {
	def := DefaultOptions()
	if opts.Package == "" {
		opts.Package = def.Package
	}
	if opts.ImportPath == "" {
		opts.ImportPath = def.ImportPath
	}
	if opts.VarName == "" {
		opts.VarName = def.VarName
	}
	return &Generator{opts: opts}
}

// GenerateTable renders reg as a single Go file.
func (g *Generator) GenerateTable(reg *registry.Registry) ([]byte, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, errors.New("registry is empty")
	}

	f := jen.NewFilePathName(g.opts.ImportPath, g.opts.Package)
	f.HeaderComment("Code generated by cldispatch generate. DO NOT EDIT.")
	if g.opts.Source != "" {
		f.HeaderComment("Source: " + g.opts.Source)
	}

	items := make([]jen.Code, 0, reg.Len())
	for _, ep := range reg.Entries() {
		items = append(items, entryPoint(ep))
	}

	f.Var().Id(g.opts.VarName).Op("=").Index().Qual(RegistryPath, "EntryPoint").Custom(multiline(), items...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render entry point table: %w", err)
	}
	return buf.Bytes(), nil
}

func entryPoint(ep registry.EntryPoint) jen.Code {
	fields := []jen.Code{
		field("Name", jen.Lit(ep.Name)),
		field("Return", jen.Lit(ep.Return)),
	}
	if len(ep.Params) > 0 {
		params := make([]jen.Code, 0, len(ep.Params))
		for _, p := range ep.Params {
			params = append(params, param(p))
		}
		fields = append(fields, field("Params", jen.Index().Qual(RegistryPath, "Param").Custom(multiline(), params...)))
	}
	if !ep.Version.IsZero() {
		fields = append(fields, field("Version", jen.Qual(RegistryPath, "Version").Values(
			field("Major", jen.Lit(ep.Version.Major)),
			field("Minor", jen.Lit(ep.Version.Minor)),
		)))
	}
	if ep.Extension != "" {
		fields = append(fields, field("Extension", jen.Lit(ep.Extension)))
	}
	if ep.Exempt {
		fields = append(fields, field("Exempt", jen.True()))
	}
	return jen.Custom(multiline(), fields...)
}

func param(p registry.Param) jen.Code {
	fields := []jen.Code{field("Type", jen.Lit(p.Type))}
	if p.TypeEnd != "" {
		fields = append(fields, field("TypeEnd", jen.Lit(p.TypeEnd)))
	}
	fields = append(fields, field("Name", jen.Lit(p.Name)))
	return jen.Values(fields...)
}

// field keeps struct literal keys in declaration order; jen.Dict sorts them.
func field(name string, value jen.Code) jen.Code {
	return jen.Id(name).Op(":").Add(value)
}

func multiline() jen.Options {
	return jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}
}
