package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

func TestLoad_Embedded(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	require.True(t, cat.Registry.Sealed())

	shared, ok := cat.Group("shared")
	require.True(t, ok)
	assert.Equal(t, location.SharedFieldNames(), shared.Names())
	assert.Equal(t, 29, shared.Len())

	names := make([]string, 0, len(cat.Constructors))
	for _, ctor := range cat.Constructors {
		names = append(names, ctor.Name)
	}
	assert.Equal(t, []string{"Path", "Query", "Header", "Cookie", "Body", "Form", "File"}, names)
}

func TestLoad_ConstructorFieldSets(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, ctor := range cat.Constructors {
		t.Run(ctor.Name, func(t *testing.T) {
			names := ctor.Group.Names()
			for _, extra := range ctor.Extras {
				names = append(names, extra.ParamName())
			}
			assert.Equal(t, ctor.Kind.FieldNames(), names)
			assert.NotEmpty(t, ctor.Summary)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	tests := []struct {
		key  string
		want any
	}{
		{key: "default", want: location.Undefined},
		{key: "path.default", want: location.Required},
		{key: "include_in_schema", want: true},
		{key: "header.convert_underscores", want: true},
		{key: "body.media_type", want: "application/json"},
		{key: "form.media_type", want: "application/x-www-form-urlencoded"},
		{key: "file.media_type", want: "multipart/form-data"},
		{key: "embed", want: nil},
		{key: "title", want: nil},
	}
	for _, tt := range tests {
		d, err := cat.Registry.Lookup(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.want, d.Default(), tt.key)
	}

	path, ok := cat.Constructor("Path")
	require.True(t, ok)
	d, ok := path.Group.Lookup("default")
	require.True(t, ok)
	assert.Equal(t, location.Required, d.Default())
	assert.Contains(t, d.Doc(), "always required")
}

func TestLoad_Deprecations(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for key, want := range map[string]string{
		"regex":   "use `pattern` instead",
		"example": "Use examples instead.",
		"extra":   "Use `json_schema_extra` instead.",
	} {
		d, err := cat.Registry.Lookup(key)
		require.NoError(t, err)
		require.True(t, d.IsDeprecated(), key)
		assert.Contains(t, d.Deprecation().Message, want)
	}

	pattern, _ := cat.Registry.Lookup("pattern")
	assert.False(t, pattern.IsDeprecated())
}

func TestLoad_SingleSource(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	title, err := cat.Registry.Lookup("title")
	require.NoError(t, err)
	for _, ctor := range cat.Constructors {
		d, ok := ctor.Group.Lookup("title")
		require.True(t, ok, ctor.Name)
		assert.Same(t, title, d, ctor.Name)
	}
}

func TestParse_CollectsErrors(t *testing.T) {
	src := []byte(`
descriptors:
  - name: title
    type: "*string"
    doc: Human-readable title.
  - name: title
    type: "*string"
    doc: Another title.
  - name: broken
    type: "map[string"
    doc: Broken type.
groups:
  shared: [title, nonexistent]
constructors:
  - name: Query
    kind: query
    group: shared
`)

	_, err := Parse("bad.yaml", src)
	require.Error(t, err)

	var multi *declerrors.MultipleErrors
	require.True(t, errors.As(err, &multi))
	assert.True(t, multi.HasCode(declerrors.DuplicateNameErrorCode))
	assert.True(t, multi.HasCode(declerrors.TypeSyntaxErrorCode))
	assert.True(t, multi.HasCode(declerrors.UnknownParameterErrorCode))
	assert.True(t, multi.HasCode(declerrors.ConfigurationErrorCode))

	var dup *declerrors.DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "bad.yaml", dup.Location().File)
	assert.Equal(t, 6, dup.Location().Line)
}

func TestParse_ExtensionNotAllowedForKind(t *testing.T) {
	src := []byte(`
descriptors:
  - name: title
    type: "*string"
    doc: Human-readable title.
  - name: embed
    type: "*bool"
    doc: Whether to embed the body parameter.
groups:
  shared: [title]
constructors:
  - name: Query
    kind: query
    group: shared
    extras: [embed]
`)

	_, err := Parse("query.yaml", src)
	assert.True(t, declerrors.HasCode(err, declerrors.UnexpectedParameterErrorCode))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, Embedded(), 0644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Source)
	assert.Len(t, cat.Constructors, 7)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, declerrors.HasCode(err, declerrors.FileSystemErrorCode))
}
