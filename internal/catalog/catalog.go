// Package catalog loads the parameter catalog: every shared and
// location-specific descriptor, the groups built from them and the
// constructors that expose them.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/paramdecl/internal/descriptor"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

//go:embed catalog.yaml
var embedded []byte

// EmbeddedName is the file name reported in errors for the embedded catalog
const EmbeddedName = "catalog.yaml"

const (
	requiredTag  = "!required"
	undefinedTag = "!undefined"
)

// Constructor declares one public constructor
type Constructor struct {
	Name    string
	Kind    location.Kind
	Group   *descriptor.Group
	Extras  []*descriptor.Descriptor
	Summary string
	Loc     declerrors.SourceLocation
}

// Catalog is a loaded, sealed catalog
type Catalog struct {
	Source       string
	Registry     *descriptor.Registry
	groups       map[string]*descriptor.Group
	groupOrder   []string
	Constructors []Constructor
}

// Group returns a named group
func (c *Catalog) Group(name string) (*descriptor.Group, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// GroupNames returns group names in declaration order
func (c *Catalog) GroupNames() []string {
	return append([]string(nil), c.groupOrder...)
}

// Constructor returns a constructor declaration by name
func (c *Catalog) Constructor(name string) (Constructor, bool) {
	for _, ctor := range c.Constructors {
		if ctor.Name == name {
			return ctor, true
		}
	}
	return Constructor{}, false
}

// Embedded returns the raw embedded catalog
func Embedded() []byte {
	return append([]byte(nil), embedded...)
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(EmbeddedName, embedded)
}

// LoadFile parses a catalog from disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, declerrors.WrapFileSystemError("read", path, err)
	}
	return Parse(path, data)
}

type rawDescriptor struct {
	Name        string                  `yaml:"name"`
	Type        string                  `yaml:"type"`
	Default     yaml.Node               `yaml:"default"`
	Doc         string                  `yaml:"doc"`
	Deprecated  string                  `yaml:"deprecated"`
	Constraints []descriptor.Constraint `yaml:"constraints"`
	InSchema    *bool                   `yaml:"in_schema"`
	GoName      string                  `yaml:"go_name"`
}

type rawConstructor struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind"`
	Group   string   `yaml:"group"`
	Replace []string `yaml:"replace"`
	Extras  []string `yaml:"extras"`
	Summary string   `yaml:"summary"`
}

type rawCatalog struct {
	Descriptors  []yaml.Node `yaml:"descriptors"`
	Groups       yaml.Node   `yaml:"groups"`
	Constructors []yaml.Node `yaml:"constructors"`
}

// Parse builds a sealed catalog from YAML. Every problem found is collected
// and returned together as a MultipleErrors.
func Parse(source string, data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, declerrors.WrapConfigurationError(source, "parse", err)
	}

	p := &parser{
		source: source,
		errs:   declerrors.NewMultipleErrors(),
		cat: &Catalog{
			Source:   source,
			Registry: descriptor.NewRegistry(),
			groups:   make(map[string]*descriptor.Group),
		},
	}

	p.defineDescriptors(raw.Descriptors)
	p.cat.Registry.Seal()
	p.buildGroups(&raw.Groups)
	p.buildConstructors(raw.Constructors)

	if err := p.errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return p.cat, nil
}

type parser struct {
	source string
	errs   *declerrors.MultipleErrors
	cat    *Catalog
}

func (p *parser) loc(node *yaml.Node) declerrors.SourceLocation {
	return declerrors.SourceLocation{File: p.source, Line: node.Line, Column: node.Column}
}

func (p *parser) add(err error) {
	if err == nil {
		return
	}
	if de, ok := err.(declerrors.DeclError); ok {
		p.errs.Add(de)
		return
	}
	p.errs.Add(declerrors.Wrap(declerrors.ConfigurationErrorCode, err.Error(), err))
}

func (p *parser) invalid(node *yaml.Node, format string, args ...any) {
	p.errs.Add(declerrors.Newf(declerrors.ConfigurationErrorCode, format, args...).WithLocation(p.loc(node)))
}

func (p *parser) defineDescriptors(nodes []yaml.Node) {
	for i := range nodes {
		node := &nodes[i]

		var raw rawDescriptor
		if err := node.Decode(&raw); err != nil {
			p.invalid(node, "invalid descriptor: %v", err)
			continue
		}

		def, err := decodeDefault(&raw.Default)
		if err != nil {
			p.invalid(&raw.Default, "descriptor '%s': invalid default: %v", raw.Name, err)
			continue
		}

		d := descriptor.Definition{
			Name:        raw.Name,
			Type:        raw.Type,
			Default:     def,
			Doc:         raw.Doc,
			Constraints: raw.Constraints,
			InSchema:    raw.InSchema,
			GoName:      raw.GoName,
			Location:    p.loc(node),
		}
		if raw.Deprecated != "" {
			d.Deprecation = location.Deprecated(raw.Deprecated)
		}

		_, err = p.cat.Registry.DefineDescriptor(d)
		p.add(err)
	}
}

func decodeDefault(node *yaml.Node) (any, error) {
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Tag == requiredTag:
		return location.Required, nil
	case node.Tag == undefinedTag:
		return location.Undefined, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) buildGroups(node *yaml.Node) {
	if node.Kind == 0 {
		return
	}
	if node.Kind != yaml.MappingNode {
		p.invalid(node, "groups must be a mapping of group name to descriptor names")
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		name := keyNode.Value

		var keys []string
		if err := valueNode.Decode(&keys); err != nil {
			p.invalid(valueNode, "group '%s': %v", name, err)
			continue
		}

		g, err := p.cat.Registry.Group(name, keys...)
		if err != nil {
			p.add(declerrors.AttachLocation(err, p.loc(valueNode)))
			continue
		}
		p.cat.groups[name] = g
		p.cat.groupOrder = append(p.cat.groupOrder, name)
	}
}

func (p *parser) buildConstructors(nodes []yaml.Node) {
	seen := make(map[string]bool, len(nodes))
	for i := range nodes {
		node := &nodes[i]

		var raw rawConstructor
		if err := node.Decode(&raw); err != nil {
			p.invalid(node, "invalid constructor: %v", err)
			continue
		}
		if seen[raw.Name] {
			p.add(declerrors.NewDuplicateNameError("constructors", raw.Name).WithLocation(p.loc(node)))
			continue
		}
		seen[raw.Name] = true

		ctor, err := p.constructor(raw, p.loc(node))
		if err != nil {
			p.add(err)
			continue
		}
		p.cat.Constructors = append(p.cat.Constructors, ctor)
	}
}

func (p *parser) constructor(raw rawConstructor, loc declerrors.SourceLocation) (Constructor, error) {
	kind, err := location.ParseKind(raw.Kind)
	if err != nil {
		return Constructor{}, declerrors.Wrap(declerrors.ConfigurationErrorCode,
			fmt.Sprintf("constructor '%s': %v", raw.Name, err), err).WithLocation(loc)
	}

	group, ok := p.cat.groups[raw.Group]
	if !ok {
		return Constructor{}, declerrors.Newf(declerrors.ConfigurationErrorCode,
			"constructor '%s' references unknown group '%s'", raw.Name, raw.Group).WithLocation(loc)
	}

	if len(raw.Replace) > 0 {
		replacements, err := p.lookupAll(raw.Replace, loc)
		if err != nil {
			return Constructor{}, err
		}
		if group, err = group.Replace(replacements...); err != nil {
			return Constructor{}, declerrors.AttachLocation(err, loc)
		}
	}

	extras, err := p.lookupAll(raw.Extras, loc)
	if err != nil {
		return Constructor{}, err
	}
	for _, extra := range extras {
		if !kind.HasExtension(extra.ParamName()) {
			unexpected := declerrors.NewUnexpectedParameterError(raw.Name, extra.ParamName())
			unexpected.WithLocation(loc)
			return Constructor{}, unexpected
		}
	}

	return Constructor{
		Name:    raw.Name,
		Kind:    kind,
		Group:   group,
		Extras:  extras,
		Summary: raw.Summary,
		Loc:     loc,
	}, nil
}

func (p *parser) lookupAll(keys []string, loc declerrors.SourceLocation) ([]*descriptor.Descriptor, error) {
	descs := make([]*descriptor.Descriptor, 0, len(keys))
	for _, key := range keys {
		d, err := p.cat.Registry.Lookup(key)
		if err != nil {
			return nil, declerrors.AttachLocation(err, loc)
		}
		descs = append(descs, d)
	}
	return descs, nil
}
