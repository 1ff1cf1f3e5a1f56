package descriptor

import (
	"slices"
	"strings"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

// Constraint is a named rule a descriptor documents about the values it accepts
type Constraint struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value,omitempty"`
}

// Descriptor is the single source of truth for one declared parameter: its
// type, default, documentation and deprecation. Descriptors are created by a
// Registry and never change afterwards.
type Descriptor struct {
	name        string
	goName      string
	valueType   ValueType
	typeExpr    string
	def         any
	doc         string
	deprecation *location.Deprecation
	constraints []Constraint
	inSchema    bool
	loc         declerrors.SourceLocation
}

// Name returns the registry key, which may be scoped ("body.media_type")
func (d *Descriptor) Name() string {
	return d.name
}

// ParamName returns the name used in signatures and keyword maps: the
// segment after the last dot of the registry key
func (d *Descriptor) ParamName() string {
	return ParamName(d.name)
}

// GoName returns the exported Go identifier for the parameter
func (d *Descriptor) GoName() string {
	return d.goName
}

// Type returns the parsed value type
func (d *Descriptor) Type() ValueType {
	return d.valueType
}

// TypeExpr returns the value type as it was declared
func (d *Descriptor) TypeExpr() string {
	return d.typeExpr
}

// Default returns the declared default. It may be location.Required,
// location.Undefined or nil when no default was declared.
func (d *Descriptor) Default() any {
	return d.def
}

// Doc returns the documentation prose
func (d *Descriptor) Doc() string {
	return d.doc
}

// Deprecation returns the deprecation marker, nil when not deprecated
func (d *Descriptor) Deprecation() *location.Deprecation {
	if d.deprecation == nil {
		return nil
	}
	dep := *d.deprecation
	return &dep
}

// IsDeprecated reports whether the parameter is deprecated
func (d *Descriptor) IsDeprecated() bool {
	return d.deprecation != nil
}

// Constraints returns the documented constraints in declaration order
func (d *Descriptor) Constraints() []Constraint {
	return slices.Clone(d.constraints)
}

// InSchema reports whether the parameter itself is visible in schemas
func (d *Descriptor) InSchema() bool {
	return d.inSchema
}

// Location returns where the descriptor was declared, if known
func (d *Descriptor) Location() declerrors.SourceLocation {
	return d.loc
}

// ParamName returns the segment after the last dot of a registry key
func ParamName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

var initialisms = map[string]string{
	"id":      "ID",
	"inf":     "Inf",
	"json":    "JSON",
	"nan":     "NaN",
	"openapi": "OpenAPI",
	"url":     "URL",
}

// GoIdentifier converts a snake_case parameter name to an exported Go name
func GoIdentifier(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if word, ok := initialisms[part]; ok {
			b.WriteString(word)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
