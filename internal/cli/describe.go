package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/toyz/paramdecl/internal/catalog"
	"github.com/toyz/paramdecl/internal/descriptor"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/factory"
)

// DescriptorView is the YAML form of a descriptor
type DescriptorView struct {
	Name        string                  `yaml:"name"`
	Type        string                  `yaml:"type"`
	Default     string                  `yaml:"default"`
	Doc         string                  `yaml:"doc"`
	Deprecated  string                  `yaml:"deprecated,omitempty"`
	Constraints []descriptor.Constraint `yaml:"constraints,omitempty"`
	InSchema    bool                    `yaml:"in_schema"`
}

// ConstructorView is the YAML form of a synthesized constructor
type ConstructorView struct {
	Name       string           `yaml:"name"`
	Kind       string           `yaml:"kind"`
	Summary    string           `yaml:"summary"`
	Group      string           `yaml:"group"`
	Parameters []DescriptorView `yaml:"parameters"`
}

// CatalogView is the YAML form of a whole catalog
type CatalogView struct {
	Source       string              `yaml:"source"`
	Descriptors  []DescriptorView    `yaml:"descriptors"`
	Groups       map[string][]string `yaml:"groups"`
	Constructors []ConstructorView   `yaml:"constructors"`
}

func describeDescriptor(d *descriptor.Descriptor) DescriptorView {
	view := DescriptorView{
		Name:        d.Name(),
		Type:        d.TypeExpr(),
		Default:     fmt.Sprint(d.Default()),
		Doc:         d.Doc(),
		Constraints: d.Constraints(),
		InSchema:    d.InSchema(),
	}
	if dep := d.Deprecation(); dep != nil {
		view.Deprecated = dep.Message
		if view.Deprecated == "" {
			view.Deprecated = "deprecated"
		}
	}
	return view
}

func describeConstructor(c *factory.Constructor) ConstructorView {
	view := ConstructorView{
		Name:    c.Name(),
		Kind:    c.Kind().String(),
		Summary: c.Summary(),
		Group:   c.Group().Name(),
	}
	for _, d := range c.Parameters() {
		view.Parameters = append(view.Parameters, describeDescriptor(d))
	}
	return view
}

// Describe renders the catalog, or a single constructor when name is set,
// as YAML
func Describe(cat *catalog.Catalog, set *factory.Set, name string) ([]byte, error) {
	if name != "" {
		c, ok := set.Get(name)
		if !ok {
			return nil, declerrors.NewUnknownParameterError(name, set.Names())
		}
		return yaml.Marshal(describeConstructor(c))
	}

	view := CatalogView{
		Source: cat.Source,
		Groups: make(map[string][]string),
	}
	for _, d := range cat.Registry.Descriptors() {
		view.Descriptors = append(view.Descriptors, describeDescriptor(d))
	}
	for _, groupName := range cat.GroupNames() {
		g, _ := cat.Group(groupName)
		view.Groups[groupName] = g.Names()
	}
	for _, c := range set.Constructors() {
		view.Constructors = append(view.Constructors, describeConstructor(c))
	}
	return yaml.Marshal(view)
}
