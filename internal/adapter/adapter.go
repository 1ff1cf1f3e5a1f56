// Package adapter maps a constructor's keyword map onto a location.Param.
package adapter

import (
	"fmt"
	"reflect"
	"sort"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

// Target builds location.Param values of one kind. Keywords map to fields
// through the param struct tag; renames cover keywords whose name differs
// from the field's tag.
type Target struct {
	kind    location.Kind
	name    string
	renames map[string]string
}

// Option configures a Target
type Option func(*Target)

// WithRename maps keyword from onto the field tagged to
func WithRename(from, to string) Option {
	return func(t *Target) {
		t.renames[from] = to
	}
}

// WithName sets the constructor name reported in errors
func WithName(name string) Option {
	return func(t *Target) {
		t.name = name
	}
}

// NewTarget creates a Target for kind
func NewTarget(kind location.Kind, opts ...Option) *Target {
	t := &Target{
		kind:    kind,
		name:    kind.String(),
		renames: make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kind returns the location the target builds
func (t *Target) Kind() location.Kind {
	return t.kind
}

// Name returns the name reported in errors
func (t *Target) Name() string {
	return t.name
}

// FieldName returns the field tag a keyword maps to
func (t *Target) FieldName(keyword string) string {
	if to, ok := t.renames[keyword]; ok {
		return to
	}
	return keyword
}

// Accepts reports whether keyword maps to a field of this target's kind
func (t *Target) Accepts(keyword string) bool {
	field := t.FieldName(keyword)
	if _, ok := sharedFields()[field]; ok {
		return true
	}
	_, ok := extensionFields()[field]
	return ok && t.kind.HasExtension(field)
}

// Build creates a Param from kwargs. Values are stored without
// transformation: an assignable value is stored as is, a T is stored by
// address in a *T field and a *T is dereferenced into a T field.
// location.None is stored as the field's nil value.
func (t *Target) Build(kwargs map[string]any) (*location.Param, error) {
	var shared location.Shared
	var ext location.Extensions
	sv := reflect.ValueOf(&shared).Elem()
	ev := reflect.ValueOf(&ext).Elem()

	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, keyword := range keys {
		field := t.FieldName(keyword)

		var target reflect.Value
		if i, ok := sharedFields()[field]; ok {
			target = sv.Field(i)
		} else if i, ok := extensionFields()[field]; ok && t.kind.HasExtension(field) {
			target = ev.Field(i)
		} else {
			return nil, declerrors.NewUnexpectedParameterError(t.name, keyword)
		}

		if err := assign(target, keyword, kwargs[keyword]); err != nil {
			return nil, err
		}
	}

	return location.New(t.kind, shared, ext), nil
}

func assign(field reflect.Value, keyword string, value any) error {
	ft := field.Type()
	if s, ok := value.(location.Sentinel); ok && s == location.None {
		value = nil
	}
	if value == nil {
		field.Set(reflect.Zero(ft))
		return nil
	}

	v := reflect.ValueOf(value)
	vt := v.Type()
	switch {
	case vt.AssignableTo(ft):
		field.Set(v)
	case ft.Kind() == reflect.Pointer && vt.AssignableTo(ft.Elem()):
		p := reflect.New(ft.Elem())
		p.Elem().Set(v)
		field.Set(p)
	case vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(ft):
		if v.IsNil() {
			field.Set(reflect.Zero(ft))
		} else {
			field.Set(v.Elem())
		}
	default:
		return declerrors.NewFieldTypeError(keyword, ft.String(), vt.String())
	}
	return nil
}

var (
	sharedFieldIndex    = tagIndex(reflect.TypeOf(location.Shared{}))
	extensionFieldIndex = tagIndex(reflect.TypeOf(location.Extensions{}))
)

func sharedFields() map[string]int    { return sharedFieldIndex }
func extensionFields() map[string]int { return extensionFieldIndex }

func tagIndex(t reflect.Type) map[string]int {
	idx := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := t.Field(i).Tag.Get(location.FieldTag); name != "" {
			idx[name] = i
		}
	}
	return idx
}

// String returns a short description for debugging
func (t *Target) String() string {
	return fmt.Sprintf("Target(%s)", t.name)
}
