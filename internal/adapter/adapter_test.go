package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/pkg/location"
)

func TestTarget_BuildStoresValues(t *testing.T) {
	title := "Item"
	maxLen := 10
	factory := func() any { return 1 }

	target := NewTarget(location.QueryKind)
	p, err := target.Build(map[string]any{
		"default":           location.Undefined,
		"default_factory":   factory,
		"title":             &title,
		"description":       "bare string stored by address",
		"max_length":        maxLen,
		"include_in_schema": true,
		"examples":          []any{"a", "b"},
		"json_schema_extra": map[string]any{"x-order": 1},
		"deprecated":        location.Deprecated("gone"),
	})
	require.NoError(t, err)

	assert.Equal(t, location.QueryKind, p.Kind())
	assert.Equal(t, location.Undefined, p.Default())
	assert.Equal(t, "Item", p.Title())
	assert.Equal(t, "bare string stored by address", p.Description())
	assert.Equal(t, 10, *p.Shared().MaxLength)
	assert.True(t, p.IncludeInSchema())
	assert.Equal(t, []any{"a", "b"}, p.Shared().Examples)
	assert.Equal(t, "gone", p.Deprecation().Message)
	assert.NotNil(t, p.Shared().DefaultFactory)
}

func TestTarget_DereferencesPointers(t *testing.T) {
	include := false
	media := "text/plain"
	convert := true

	body, err := NewTarget(location.BodyKind).Build(map[string]any{
		"include_in_schema": &include,
		"media_type":        &media,
	})
	require.NoError(t, err)
	assert.False(t, body.IncludeInSchema())
	assert.Equal(t, "text/plain", body.MediaType())

	header, err := NewTarget(location.HeaderKind).Build(map[string]any{
		"convert_underscores": &convert,
	})
	require.NoError(t, err)
	assert.True(t, header.ConvertUnderscores())

	var nilMedia *string
	form, err := NewTarget(location.FormKind).Build(map[string]any{"media_type": nilMedia})
	require.NoError(t, err)
	assert.Equal(t, "", form.MediaType())
}

func TestTarget_NoneStoresNil(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		get     func(*location.Param) any
	}{
		{name: "default", keyword: "default", get: func(p *location.Param) any { return p.Default() }},
		{name: "title", keyword: "title", get: func(p *location.Param) any { return p.Shared().Title }},
		{name: "examples", keyword: "examples", get: func(p *location.Param) any { return p.Shared().Examples }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewTarget(location.QueryKind).Build(map[string]any{tt.keyword: location.None})
			require.NoError(t, err)
			assert.Nil(t, tt.get(p))
		})
	}
}

func TestTarget_Errors(t *testing.T) {
	tests := []struct {
		name   string
		kind   location.Kind
		kwargs map[string]any
		code   declerrors.ErrorCode
	}{
		{
			name:   "unknown keyword",
			kind:   location.QueryKind,
			kwargs: map[string]any{"bogus": 1},
			code:   declerrors.UnexpectedParameterErrorCode,
		},
		{
			name:   "extension of another kind",
			kind:   location.QueryKind,
			kwargs: map[string]any{"media_type": "application/json"},
			code:   declerrors.UnexpectedParameterErrorCode,
		},
		{
			name:   "wrong value type",
			kind:   location.PathKind,
			kwargs: map[string]any{"title": 42},
			code:   declerrors.FieldTypeErrorCode,
		},
		{
			name:   "wrong collection type",
			kind:   location.PathKind,
			kwargs: map[string]any{"examples": []string{"a"}},
			code:   declerrors.FieldTypeErrorCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTarget(tt.kind, WithName("Ctor")).Build(tt.kwargs)
			require.Error(t, err)
			assert.True(t, declerrors.HasCode(err, tt.code), err.Error())
		})
	}
}

func TestTarget_UnexpectedParameterMessage(t *testing.T) {
	_, err := NewTarget(location.CookieKind, WithName("Cookie")).Build(map[string]any{"embed": true})

	var unexpected *declerrors.UnexpectedParameterError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "Cookie() got an unexpected parameter 'embed'", unexpected.Error())
}

func TestTarget_WithRename(t *testing.T) {
	target := NewTarget(location.HeaderKind, WithRename("underscore_conversion", "convert_underscores"))

	assert.True(t, target.Accepts("underscore_conversion"))
	assert.True(t, target.Accepts("title"))
	assert.False(t, target.Accepts("media_type"))

	p, err := target.Build(map[string]any{"underscore_conversion": true})
	require.NoError(t, err)
	assert.True(t, p.ConvertUnderscores())
}

func TestTarget_IdentityMappingCoversFieldSet(t *testing.T) {
	for _, kind := range location.Kinds {
		target := NewTarget(kind)
		for _, name := range kind.FieldNames() {
			assert.True(t, target.Accepts(name), "%s.%s", kind, name)
			assert.Equal(t, name, target.FieldName(name))
		}
	}
}
