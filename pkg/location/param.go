package location

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Param holds the resolved metadata of one declared API parameter. It is
// what the schema generator and the request validator consume. A Param is
// immutable; accessors return copies.
type Param struct {
	kind   Kind
	shared Shared
	ext    Extensions
}

// New creates a Param of the given kind. Extension fields that do not apply
// to kind are cleared.
func New(kind Kind, shared Shared, ext Extensions) *Param {
	p := &Param{
		kind:   kind,
		shared: cloneShared(shared),
	}
	if kind.HasExtension("convert_underscores") {
		p.ext.ConvertUnderscores = ext.ConvertUnderscores
	}
	if kind.HasExtension("embed") {
		p.ext.Embed = clonePtr(ext.Embed)
	}
	if kind.HasExtension("media_type") {
		p.ext.MediaType = ext.MediaType
	}
	return p
}

// Kind returns the request location
func (p *Param) Kind() Kind {
	return p.kind
}

// Shared returns a copy of the shared field set
func (p *Param) Shared() Shared {
	return cloneShared(p.shared)
}

// Extensions returns a copy of the location-specific fields
func (p *Param) Extensions() Extensions {
	ext := p.ext
	ext.Embed = clonePtr(ext.Embed)
	return ext
}

// Get returns the field bound to a parameter name. The boolean is false when
// the name is not part of this kind's field set.
func (p *Param) Get(name string) (any, bool) {
	shared, ext := indexes()
	if i, ok := shared.index[name]; ok {
		s := p.Shared()
		return reflect.ValueOf(s).Field(i).Interface(), true
	}
	if i, ok := ext.index[name]; ok && p.kind.HasExtension(name) {
		e := p.Extensions()
		return reflect.ValueOf(e).Field(i).Interface(), true
	}
	return nil, false
}

// Default returns the declared default, which may be Required or Undefined.
// A parameter declared with None returns nil.
func (p *Param) Default() any {
	return p.shared.Default
}

// IsRequired reports whether the default is the Required sentinel
func (p *Param) IsRequired() bool {
	s, ok := p.shared.Default.(Sentinel)
	return ok && s == Required
}

// Title returns the human-readable title or an empty string
func (p *Param) Title() string {
	return deref(p.shared.Title)
}

// Description returns the human-readable description or an empty string
func (p *Param) Description() string {
	return deref(p.shared.Description)
}

// Alias returns the alternative name of the parameter or an empty string
func (p *Param) Alias() string {
	return deref(p.shared.Alias)
}

// Deprecation returns the deprecation marker, nil when not deprecated
func (p *Param) Deprecation() *Deprecation {
	return clonePtr(p.shared.Deprecated)
}

// IncludeInSchema reports whether the parameter appears in generated schemas
func (p *Param) IncludeInSchema() bool {
	return p.shared.IncludeInSchema
}

// ConvertUnderscores reports whether a header name has underscores converted
// to hyphens. Always false for non-header locations.
func (p *Param) ConvertUnderscores() bool {
	return p.ext.ConvertUnderscores
}

// Embed returns the body embed flag, nil when unset
func (p *Param) Embed() *bool {
	return clonePtr(p.ext.Embed)
}

// MediaType returns the payload media type. Empty for non-payload locations.
func (p *Param) MediaType() string {
	return p.ext.MediaType
}

// Equal reports whether two params hold the same fields. Default factories
// are compared by identity.
func (p *Param) Equal(other *Param) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.kind != other.kind {
		return false
	}
	if funcPointer(p.shared.DefaultFactory) != funcPointer(other.shared.DefaultFactory) {
		return false
	}
	a, b := p.shared, other.shared
	a.DefaultFactory, b.DefaultFactory = nil, nil
	return reflect.DeepEqual(a, b) && reflect.DeepEqual(p.ext, other.ext)
}

// String returns a short description for debugging
func (p *Param) String() string {
	return fmt.Sprintf("%s(default=%v)", p.kind, p.shared.Default)
}

func cloneShared(s Shared) Shared {
	s.Alias = clonePtr(s.Alias)
	s.AliasPriority = clonePtr(s.AliasPriority)
	s.ValidationAlias = clonePtr(s.ValidationAlias)
	s.SerializationAlias = clonePtr(s.SerializationAlias)
	s.Title = clonePtr(s.Title)
	s.Description = clonePtr(s.Description)
	s.Gt = clonePtr(s.Gt)
	s.Ge = clonePtr(s.Ge)
	s.Lt = clonePtr(s.Lt)
	s.Le = clonePtr(s.Le)
	s.MinLength = clonePtr(s.MinLength)
	s.MaxLength = clonePtr(s.MaxLength)
	s.Pattern = clonePtr(s.Pattern)
	s.Regex = clonePtr(s.Regex)
	s.Discriminator = clonePtr(s.Discriminator)
	s.Strict = clonePtr(s.Strict)
	s.MultipleOf = clonePtr(s.MultipleOf)
	s.AllowInfNaN = clonePtr(s.AllowInfNaN)
	s.MaxDigits = clonePtr(s.MaxDigits)
	s.DecimalPlaces = clonePtr(s.DecimalPlaces)
	s.Deprecated = clonePtr(s.Deprecated)
	s.Examples = slices.Clone(s.Examples)
	s.OpenAPIExamples = maps.Clone(s.OpenAPIExamples)
	s.JSONSchemaExtra = maps.Clone(s.JSONSchemaExtra)
	s.Extra = maps.Clone(s.Extra)
	return s
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func funcPointer(f func() any) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
