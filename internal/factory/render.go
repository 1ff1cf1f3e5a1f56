package factory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/toyz/paramdecl/internal/descriptor"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/utils"
	"github.com/toyz/paramdecl/pkg/location"
)

// Generated file names
const (
	ConstructorsFile = "params_gen.go"
	AliasesFile      = "aliases_gen.go"
)

// Field is one rendered options struct field
type Field struct {
	Name string
	Type string
	Tag  string
	Doc  []string
}

// TypeAlias is one rendered shared type alias
type TypeAlias struct {
	Name string
	Type string
	Doc  []string
}

// Renderer turns a descriptor into constructor source. Whatever the
// renderer, a field's name, tag and resolved type stay the same.
type Renderer interface {
	Strategy() StrategyKind
	Field(d *descriptor.Descriptor) Field
	// Alias returns the declaration emitted once for the descriptor, if any
	Alias(d *descriptor.Descriptor) (TypeAlias, bool)
}

// InlineRenderer repeats each descriptor's doc and type on every field
type InlineRenderer struct{}

// Strategy returns Inline
func (InlineRenderer) Strategy() StrategyKind { return Inline }

// Field renders the field with its full doc
func (InlineRenderer) Field(d *descriptor.Descriptor) Field {
	doc := docLines(d)
	if dep := deprecationLines(d); len(dep) > 0 {
		doc = append(append(doc, ""), dep...)
	}
	return Field{
		Name: d.GoName(),
		Type: d.Type().GoType(),
		Tag:  fieldTag(d),
		Doc:  doc,
	}
}

// Alias returns false; inline rendering declares nothing shared
func (InlineRenderer) Alias(*descriptor.Descriptor) (TypeAlias, bool) {
	return TypeAlias{}, false
}

// AliasRenderer documents each descriptor once on a type alias that every
// field references
type AliasRenderer struct{}

// Strategy returns Alias
func (AliasRenderer) Strategy() StrategyKind { return Alias }

// Field renders the field as a reference to the descriptor's alias. A
// deprecation stays on the field so that uses of the field are flagged.
func (AliasRenderer) Field(d *descriptor.Descriptor) Field {
	return Field{
		Name: d.GoName(),
		Type: AliasName(d),
		Tag:  fieldTag(d),
		Doc:  deprecationLines(d),
	}
}

// Alias renders the shared alias declaration
func (AliasRenderer) Alias(d *descriptor.Descriptor) (TypeAlias, bool) {
	name := AliasName(d)
	doc := append([]string{fmt.Sprintf("%s is the type of the %s parameter.", name, d.Name()), ""}, docLines(d)...)
	return TypeAlias{
		Name: name,
		Type: d.Type().GoType(),
		Doc:  doc,
	}, true
}

// AliasName returns the alias identifier of a descriptor. Scoped registry
// keys keep their scope so that "path.default" and "default" stay distinct.
func AliasName(d *descriptor.Descriptor) string {
	return descriptor.GoIdentifier(strings.ReplaceAll(d.Name(), ".", "_")) + "Param"
}

func fieldTag(d *descriptor.Descriptor) string {
	return fmt.Sprintf("%s:%q", location.FieldTag, d.ParamName())
}

func docLines(d *descriptor.Descriptor) []string {
	lines := strings.Split(d.Doc(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	if def, ok := formatDefault(d.Default()); ok {
		lines = append(lines, "", fmt.Sprintf("Defaults to %s.", def))
	}
	return lines
}

func deprecationLines(d *descriptor.Descriptor) []string {
	dep := d.Deprecation()
	if dep == nil {
		return nil
	}
	if dep.Message == "" {
		return []string{"Deprecated: do not use."}
	}
	return []string{"Deprecated: " + strings.TrimSpace(dep.Message)}
}

func formatDefault(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case location.Sentinel:
		switch val {
		case location.Required:
			return "location.Required", true
		case location.Undefined:
			return "location.Undefined", true
		case location.None:
			return "location.None", true
		}
		return strconv.Quote(string(val)), true
	case string:
		return strconv.Quote(val), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}

// RenderOptions controls the generated package
type RenderOptions struct {
	Package        string
	LocationImport string
	Generator      string
}

// DefaultRenderOptions renders package params of this module
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Package:        "params",
		LocationImport: "github.com/toyz/paramdecl/pkg/location",
		Generator:      "paramgen",
	}
}

// GeneratedFile is one rendered, formatted source file
type GeneratedFile struct {
	Name    string
	Content []byte
}

// Stats measures how much documentation a strategy repeats
type Stats struct {
	Strategy     string
	Files        int
	Lines        int
	DocLines     int
	RepeatedDocs int
}

// Map returns the stats keyed for diagnostic summaries
func (s Stats) Map() map[string]interface{} {
	return map[string]interface{}{
		"strategy":      s.Strategy,
		"files":         s.Files,
		"lines":         s.Lines,
		"doc lines":     s.DocLines,
		"repeated docs": s.RepeatedDocs,
	}
}

type constructorModel struct {
	Name    string
	Summary []string
	Fields  []Field
}

type constructorsFileModel struct {
	Generator      string
	Package        string
	LocationImport string
	Constructors   []constructorModel
}

type aliasesFileModel struct {
	Generator string
	Package   string
	Imports   []string
	Aliases   []TypeAlias
}

var renderers = map[StrategyKind]Renderer{
	Inline: InlineRenderer{},
	Alias:  AliasRenderer{},
}

// Render generates the constructor source for set. The constructors file
// is always produced; the aliases file only when a descriptor renders as
// an alias.
func Render(set *Set, strategy Strategy, opts RenderOptions) ([]GeneratedFile, error) {
	files, _, err := render(set, strategy, opts)
	return files, err
}

// Measure renders set and reports its size and documentation repetition
func Measure(set *Set, strategy Strategy, opts RenderOptions) (Stats, error) {
	_, stats, err := render(set, strategy, opts)
	return stats, err
}

func render(set *Set, strategy Strategy, opts RenderOptions) ([]GeneratedFile, Stats, error) {
	stats := Stats{Strategy: strategy.String()}
	if err := strategy.Validate(); err != nil {
		return nil, stats, declerrors.WrapConfigurationError("render.strategy", "validate", err)
	}
	if opts.Package == "" || opts.LocationImport == "" {
		def := DefaultRenderOptions()
		if opts.Package == "" {
			opts.Package = def.Package
		}
		if opts.LocationImport == "" {
			opts.LocationImport = def.LocationImport
		}
	}
	if opts.Generator == "" {
		opts.Generator = "paramgen"
	}

	docCount := make(map[*descriptor.Descriptor]int)
	aliasSeen := make(map[string]bool)

	ctorFile := constructorsFileModel{
		Generator:      opts.Generator,
		Package:        opts.Package,
		LocationImport: opts.LocationImport,
	}
	aliasFile := aliasesFileModel{
		Generator: opts.Generator,
		Package:   opts.Package,
	}

	for _, ctor := range set.Constructors() {
		model := constructorModel{
			Name:    ctor.Name(),
			Summary: strings.Split(strings.TrimSpace(ctor.Summary()), "\n"),
		}
		if ctor.Summary() == "" {
			model.Summary = []string{fmt.Sprintf("%s declares a %s parameter.", ctor.Name(), ctor.Kind())}
		}

		for _, d := range ctor.Parameters() {
			for _, pkg := range d.Type().Packages() {
				if pkg != "location" {
					return nil, stats, declerrors.WrapGenerateError("constructors", ConstructorsFile,
						fmt.Errorf("parameter %s references unknown package %q", d.Name(), pkg))
				}
			}

			r := renderers[strategy.For(d)]
			field := r.Field(d)
			model.Fields = append(model.Fields, field)
			if r.Strategy() == Inline {
				docCount[d]++
				stats.DocLines += len(docLines(d))
			}

			alias, ok := r.Alias(d)
			if !ok || aliasSeen[alias.Name] {
				continue
			}
			aliasSeen[alias.Name] = true
			aliasFile.Aliases = append(aliasFile.Aliases, alias)
			docCount[d]++
			stats.DocLines += len(docLines(d))
			if len(d.Type().Packages()) > 0 && !contains(aliasFile.Imports, opts.LocationImport) {
				aliasFile.Imports = append(aliasFile.Imports, opts.LocationImport)
			}
		}
		ctorFile.Constructors = append(ctorFile.Constructors, model)
	}

	for _, n := range docCount {
		if n > 1 {
			stats.RepeatedDocs++
		}
	}

	registry := newTemplateRegistry()
	var files []GeneratedFile

	file, err := renderFile(registry, "constructors", ConstructorsFile, ctorFile)
	if err != nil {
		return nil, stats, err
	}
	files = append(files, file)

	if len(aliasFile.Aliases) > 0 {
		sort.Strings(aliasFile.Imports)
		file, err := renderFile(registry, "aliases", AliasesFile, aliasFile)
		if err != nil {
			return nil, stats, err
		}
		files = append(files, file)
	}

	stats.Files = len(files)
	for _, f := range files {
		stats.Lines += strings.Count(string(f.Content), "\n")
	}
	return files, stats, nil
}

func renderFile(registry *templateRegistry, templateName, fileName string, data interface{}) (GeneratedFile, error) {
	src, err := executeTemplate(templateName, registry.MustGet(templateName), data)
	if err != nil {
		return GeneratedFile{}, err
	}

	formatted, err := utils.FormatGoSource(fileName, []byte(src))
	if err != nil {
		genErr := declerrors.WrapGenerateError(templateName, fileName, err)
		genErr.Stage = "format"
		return GeneratedFile{}, genErr
	}
	return GeneratedFile{Name: fileName, Content: formatted}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
