// Package factory synthesizes the public parameter constructors from
// descriptor groups and renders their Go source.
package factory

import (
	"fmt"
	"reflect"

	"github.com/toyz/paramdecl/internal/adapter"
	"github.com/toyz/paramdecl/internal/catalog"
	"github.com/toyz/paramdecl/internal/descriptor"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

// ConstructorSpec declares one constructor: the shared group it inherits,
// the location-specific extras appended after it and the target that builds
// its instances.
type ConstructorSpec struct {
	Name    string
	Kind    location.Kind
	Group   *descriptor.Group
	Extras  []*descriptor.Descriptor
	Target  *adapter.Target
	Summary string
}

// SpecsFromCatalog turns catalog constructor declarations into specs with
// identity-mapped targets
func SpecsFromCatalog(cat *catalog.Catalog) []ConstructorSpec {
	specs := make([]ConstructorSpec, 0, len(cat.Constructors))
	for _, ctor := range cat.Constructors {
		specs = append(specs, ConstructorSpec{
			Name:    ctor.Name,
			Kind:    ctor.Kind,
			Group:   ctor.Group,
			Extras:  ctor.Extras,
			Target:  adapter.NewTarget(ctor.Kind, adapter.WithName(ctor.Name)),
			Summary: ctor.Summary,
		})
	}
	return specs
}

// Constructor is a synthesized parameter constructor
type Constructor struct {
	name     string
	kind     location.Kind
	summary  string
	params   *descriptor.Group
	target   *adapter.Target
	defaults map[string]any
}

// Name returns the constructor name
func (c *Constructor) Name() string {
	return c.name
}

// Kind returns the location of the instances the constructor produces
func (c *Constructor) Kind() location.Kind {
	return c.kind
}

// Summary returns the constructor's doc text
func (c *Constructor) Summary() string {
	return c.summary
}

// Group returns the full declared parameter group, extras included
func (c *Constructor) Group() *descriptor.Group {
	return c.params
}

// Parameters returns the declared parameters in signature order
func (c *Constructor) Parameters() []*descriptor.Descriptor {
	return c.params.Descriptors()
}

// Call produces an instance from a keyword map. Supplied values are laid
// over the descriptor defaults and handed to the target unchanged. A nil
// value, typed or not, counts as not supplied; pass location.None to
// declare an explicit nil.
func (c *Constructor) Call(kwargs map[string]any) (*location.Param, error) {
	for name := range kwargs {
		if !c.params.Has(name) {
			return nil, declerrors.NewUnexpectedParameterError(c.name, name)
		}
	}

	assembled := make(map[string]any, len(c.defaults)+len(kwargs))
	for name, value := range c.defaults {
		assembled[name] = value
	}
	for name, value := range kwargs {
		if !isNil(value) {
			assembled[name] = value
		}
	}
	return c.target.Build(assembled)
}

// CallOptions reads the param-tagged fields of an options struct into a
// keyword map and calls the constructor. Nil fields are not supplied.
func (c *Constructor) CallOptions(opts any) (*location.Param, error) {
	v := reflect.ValueOf(opts)
	if !v.IsValid() {
		return c.Call(nil)
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return c.Call(nil)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, declerrors.NewFieldTypeError(c.name+" options", "struct", v.Type().String())
	}

	t := v.Type()
	kwargs := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get(location.FieldTag)
		if name == "" {
			continue
		}
		fv := v.Field(i)
		if nilable(fv.Kind()) && fv.IsNil() {
			continue
		}
		kwargs[name] = fv.Interface()
	}
	return c.Call(kwargs)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return nilable(v.Kind()) && v.IsNil()
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Set is the ordered collection of synthesized constructors
type Set struct {
	constructors []*Constructor
	byName       map[string]*Constructor
}

// Get returns a constructor by name
func (s *Set) Get(name string) (*Constructor, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// MustGet returns a constructor by name and panics when it is missing
func (s *Set) MustGet(name string) *Constructor {
	c, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("constructor not found: %s", name))
	}
	return c
}

// ByKind returns the first constructor producing kind
func (s *Set) ByKind(kind location.Kind) (*Constructor, bool) {
	for _, c := range s.constructors {
		if c.kind == kind {
			return c, true
		}
	}
	return nil, false
}

// Names returns constructor names in declaration order
func (s *Set) Names() []string {
	names := make([]string, len(s.constructors))
	for i, c := range s.constructors {
		names[i] = c.name
	}
	return names
}

// Constructors returns the constructors in declaration order
func (s *Set) Constructors() []*Constructor {
	return append([]*Constructor(nil), s.constructors...)
}

// Synthesize builds one constructor per spec. The registry must be sealed
// and every descriptor a spec uses must be the registry's own record.
func Synthesize(reg *descriptor.Registry, specs ...ConstructorSpec) (*Set, error) {
	if !reg.Sealed() {
		return nil, declerrors.NewRegistryNotSealedError("synthesize constructors")
	}

	set := &Set{byName: make(map[string]*Constructor, len(specs))}
	for _, spec := range specs {
		if _, exists := set.byName[spec.Name]; exists {
			return nil, declerrors.NewDuplicateNameError("constructors", spec.Name)
		}
		ctor, err := synthesize(reg, spec)
		if err != nil {
			return nil, err
		}
		set.constructors = append(set.constructors, ctor)
		set.byName[spec.Name] = ctor
	}
	return set, nil
}

func synthesize(reg *descriptor.Registry, spec ConstructorSpec) (*Constructor, error) {
	invalid := func(format string, args ...any) error {
		return declerrors.Newf(declerrors.ConfigurationErrorCode, "constructor '%s': "+format,
			append([]any{spec.Name}, args...)...)
	}

	switch {
	case spec.Name == "":
		return nil, declerrors.New(declerrors.ConfigurationErrorCode, "constructor without a name")
	case spec.Group == nil:
		return nil, invalid("no parameter group")
	case spec.Target == nil:
		return nil, invalid("no target")
	case spec.Target.Kind() != spec.Kind:
		return nil, invalid("target builds %s, not %s", spec.Target.Kind(), spec.Kind)
	}

	params, err := descriptor.Extend(spec.Group, spec.Name, spec.Extras...)
	if err != nil {
		return nil, err
	}

	defaults := make(map[string]any, params.Len())
	for _, d := range params.Descriptors() {
		registered, err := reg.Lookup(d.Name())
		if err != nil {
			return nil, err
		}
		if registered != d {
			return nil, invalid("descriptor '%s' is not the registry's record", d.Name())
		}
		if !spec.Target.Accepts(d.ParamName()) {
			return nil, declerrors.NewUnexpectedParameterError(spec.Name, d.ParamName())
		}
		if d.Default() != nil {
			defaults[d.ParamName()] = d.Default()
		}
	}

	// Defaults must build on their own so that no valid call can fail.
	if _, err := spec.Target.Build(defaults); err != nil {
		return nil, err
	}

	return &Constructor{
		name:     spec.Name,
		kind:     spec.Kind,
		summary:  spec.Summary,
		params:   params,
		target:   spec.Target,
		defaults: defaults,
	}, nil
}
