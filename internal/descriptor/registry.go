package descriptor

import (
	"errors"
	"fmt"
	"strings"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/utils"
	"github.com/toyz/paramdecl/pkg/location"
)

// Definition describes a descriptor to be added to a Registry
type Definition struct {
	Name        string
	Type        string
	Default     any
	Doc         string
	Deprecation *location.Deprecation
	Constraints []Constraint
	// InSchema defaults to true when nil
	InSchema *bool
	// GoName overrides the identifier derived from the parameter name
	GoName   string
	Location declerrors.SourceLocation
}

// Registry owns every parameter descriptor. It is populated once, sealed,
// and then only read.
type Registry struct {
	items *utils.BaseRegistry[string, *Descriptor]
}

// NewRegistry creates an empty, unsealed registry
func NewRegistry() *Registry {
	items := utils.NewBaseRegistry[string, *Descriptor]("descriptor", "parameter", "descriptor")
	items.SetValidator(utils.NoDuplicateValidator[string, *Descriptor]("parameter"))
	return &Registry{items: items}
}

// Define adds a descriptor. It fails with a DuplicateNameError when name is
// already defined and with a RegistrySealedError after Seal.
func (r *Registry) Define(name, valueType string, def any, doc string, constraints []Constraint, deprecation ...*location.Deprecation) (*Descriptor, error) {
	d := Definition{
		Name:        name,
		Type:        valueType,
		Default:     def,
		Doc:         doc,
		Constraints: constraints,
	}
	if len(deprecation) > 0 {
		d.Deprecation = deprecation[0]
	}
	return r.DefineDescriptor(d)
}

// DefineDescriptor adds a descriptor from a Definition
func (r *Registry) DefineDescriptor(def Definition) (*Descriptor, error) {
	if r.items.Sealed() {
		return nil, declerrors.NewRegistrySealedError(fmt.Sprintf("define '%s'", def.Name))
	}

	desc, err := newDescriptor(def)
	if err != nil {
		return nil, err
	}

	if err := r.items.Register(def.Name, desc); err != nil {
		var sealed *utils.SealedError
		if errors.As(err, &sealed) {
			return nil, declerrors.NewRegistrySealedError(fmt.Sprintf("define '%s'", def.Name))
		}
		var dup *utils.DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, declerrors.NewDuplicateNameError("registry", def.Name).WithLocation(def.Location)
		}
		return nil, err
	}
	return desc, nil
}

func newDescriptor(def Definition) (*Descriptor, error) {
	invalid := func(format string, args ...any) error {
		return declerrors.Newf(declerrors.InvalidDescriptorErrorCode, format, args...).
			WithLocation(def.Location).
			WithContext("name", def.Name)
	}

	if err := utils.ValidParameterKey("name")(def.Name); err != nil {
		return nil, invalid("invalid parameter name '%s'", def.Name)
	}
	if def.GoName != "" {
		if err := utils.IsValidGoIdentifier("go_name")(def.GoName); err != nil {
			return nil, invalid("parameter '%s': %v", def.Name, err)
		}
	}
	if strings.TrimSpace(def.Doc) == "" {
		return nil, invalid("parameter '%s' has no documentation", def.Name)
	}

	vt, err := ParseValueType(def.Type)
	if err != nil {
		var syntax *declerrors.TypeSyntaxError
		if errors.As(err, &syntax) {
			syntax.WithLocation(def.Location)
		}
		return nil, err
	}

	seen := make(map[string]bool, len(def.Constraints))
	for _, c := range def.Constraints {
		if seen[c.Name] {
			return nil, invalid("parameter '%s' declares constraint '%s' twice", def.Name, c.Name)
		}
		seen[c.Name] = true
	}

	goName := def.GoName
	if goName == "" {
		goName = GoIdentifier(ParamName(def.Name))
	}

	inSchema := true
	if def.InSchema != nil {
		inSchema = *def.InSchema
	}

	desc := &Descriptor{
		name:        def.Name,
		goName:      goName,
		valueType:   vt,
		typeExpr:    def.Type,
		def:         def.Default,
		doc:         strings.TrimSpace(def.Doc),
		constraints: append([]Constraint(nil), def.Constraints...),
		inSchema:    inSchema,
		loc:         def.Location,
	}
	if def.Deprecation != nil {
		dep := *def.Deprecation
		desc.deprecation = &dep
	}
	return desc, nil
}

// Lookup returns the descriptor registered under name. Every group holding
// the descriptor holds this same pointer.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	desc, ok := r.items.Get(name)
	if !ok {
		return nil, declerrors.NewUnknownParameterError(name, r.items.List())
	}
	return desc, nil
}

// Seal freezes the registry. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.items.Seal()
}

// Sealed reports whether Seal has been called
func (r *Registry) Sealed() bool {
	return r.items.Sealed()
}

// Names returns the registry keys in definition order
func (r *Registry) Names() []string {
	return r.items.List()
}

// Len returns the number of defined descriptors
func (r *Registry) Len() int {
	return r.items.Size()
}

// Descriptors returns every descriptor in definition order
func (r *Registry) Descriptors() []*Descriptor {
	return r.items.Values()
}

// Group resolves names, in the given order, into a group. The registry must
// be sealed. An unresolved name is an UnknownParameterError and a repeated
// parameter name is a DuplicateNameError.
func (r *Registry) Group(name string, keys ...string) (*Group, error) {
	if !r.items.Sealed() {
		return nil, declerrors.NewRegistryNotSealedError(fmt.Sprintf("assemble group '%s'", name))
	}

	descs := make([]*Descriptor, 0, len(keys))
	for _, key := range keys {
		desc, err := r.Lookup(key)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	return newGroup(name, descs)
}
