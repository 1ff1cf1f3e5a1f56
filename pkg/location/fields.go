package location

import (
	"reflect"
	"sync"
)

// Sentinel marks a default that is not a value
type Sentinel string

const (
	// Required means the request must supply a value
	Required Sentinel = "required"
	// Undefined means no default was declared
	Undefined Sentinel = "undefined"
	// None declares an explicit nil default. Constructors store it as a
	// literal nil, so the parameter is optional with no value.
	None Sentinel = "none"
)

// String returns the sentinel name
func (s Sentinel) String() string {
	return string(s)
}

// Example is an OpenAPI-specific example attached to a parameter
type Example struct {
	Summary       string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Value         any    `json:"value,omitempty" yaml:"value,omitempty"`
	ExternalValue string `json:"externalValue,omitempty" yaml:"externalValue,omitempty"`
}

// Deprecation marks a declared parameter as deprecated in the generated schema
type Deprecation struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Deprecated returns a deprecation marker with an optional message
func Deprecated(message string) *Deprecation {
	return &Deprecation{Message: message}
}

// Shared is the field set common to every location
type Shared struct {
	Default            any                `param:"default"`
	DefaultFactory     func() any         `param:"default_factory"`
	Alias              *string            `param:"alias"`
	AliasPriority      *int               `param:"alias_priority"`
	ValidationAlias    *string            `param:"validation_alias"`
	SerializationAlias *string            `param:"serialization_alias"`
	Title              *string            `param:"title"`
	Description        *string            `param:"description"`
	Gt                 *float64           `param:"gt"`
	Ge                 *float64           `param:"ge"`
	Lt                 *float64           `param:"lt"`
	Le                 *float64           `param:"le"`
	MinLength          *int               `param:"min_length"`
	MaxLength          *int               `param:"max_length"`
	Pattern            *string            `param:"pattern"`
	Regex              *string            `param:"regex"`
	Discriminator      *string            `param:"discriminator"`
	Strict             *bool              `param:"strict"`
	MultipleOf         *float64           `param:"multiple_of"`
	AllowInfNaN        *bool              `param:"allow_inf_nan"`
	MaxDigits          *int               `param:"max_digits"`
	DecimalPlaces      *int               `param:"decimal_places"`
	Examples           []any              `param:"examples"`
	Example            any                `param:"example"`
	OpenAPIExamples    map[string]Example `param:"openapi_examples"`
	Deprecated         *Deprecation       `param:"deprecated"`
	IncludeInSchema    bool               `param:"include_in_schema"`
	JSONSchemaExtra    map[string]any     `param:"json_schema_extra"`
	Extra              map[string]any     `param:"extra"`
}

// Extensions holds the location-specific fields. Only the fields named by
// Kind.ExtensionNames are meaningful for a given kind.
type Extensions struct {
	ConvertUnderscores bool   `param:"convert_underscores"`
	Embed              *bool  `param:"embed"`
	MediaType          string `param:"media_type"`
}

// FieldTag is the struct tag that binds a Go field to a parameter name
const FieldTag = "param"

type fieldIndex struct {
	names []string
	index map[string]int
}

var (
	sharedIndex    fieldIndex
	extensionIndex fieldIndex
	buildIndexOnce sync.Once
)

func indexOf(t reflect.Type) fieldIndex {
	idx := fieldIndex{index: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get(FieldTag)
		if name == "" {
			continue
		}
		idx.names = append(idx.names, name)
		idx.index[name] = i
	}
	return idx
}

func indexes() (fieldIndex, fieldIndex) {
	buildIndexOnce.Do(func() {
		sharedIndex = indexOf(reflect.TypeOf(Shared{}))
		extensionIndex = indexOf(reflect.TypeOf(Extensions{}))
	})
	return sharedIndex, extensionIndex
}

// SharedFieldNames returns the parameter names of the shared field set in
// declaration order
func SharedFieldNames() []string {
	shared, _ := indexes()
	return append([]string(nil), shared.names...)
}

// IsSharedField reports whether name belongs to the shared field set
func IsSharedField(name string) bool {
	shared, _ := indexes()
	_, ok := shared.index[name]
	return ok
}

// IsExtensionField reports whether name belongs to any location's extensions
func IsExtensionField(name string) bool {
	_, ext := indexes()
	_, ok := ext.index[name]
	return ok
}
