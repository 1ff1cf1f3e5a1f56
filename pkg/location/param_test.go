package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("body_param")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKind_FieldNames(t *testing.T) {
	shared := SharedFieldNames()
	require.Len(t, shared, 29)
	assert.Equal(t, "default", shared[0])
	assert.Equal(t, "extra", shared[len(shared)-1])

	assert.Equal(t, shared, PathKind.FieldNames())
	assert.Equal(t, shared, CookieKind.FieldNames())
	assert.Equal(t, append(SharedFieldNames(), "convert_underscores"), HeaderKind.FieldNames())
	for _, k := range []Kind{BodyKind, FormKind, FileKind} {
		assert.True(t, k.IsPayload())
		assert.Equal(t, append(SharedFieldNames(), "embed", "media_type"), k.FieldNames())
	}
	assert.False(t, QueryKind.IsPayload())

	assert.True(t, IsSharedField("title"))
	assert.False(t, IsSharedField("embed"))
	assert.True(t, IsExtensionField("embed"))
	assert.False(t, IsExtensionField("title"))
}

func TestNew_ClearsForeignExtensions(t *testing.T) {
	ext := Extensions{ConvertUnderscores: true, Embed: boolPtr(true), MediaType: "application/json"}

	query := New(QueryKind, Shared{}, ext)
	assert.False(t, query.ConvertUnderscores())
	assert.Nil(t, query.Embed())
	assert.Empty(t, query.MediaType())

	header := New(HeaderKind, Shared{}, ext)
	assert.True(t, header.ConvertUnderscores())
	assert.Nil(t, header.Embed())

	body := New(BodyKind, Shared{}, ext)
	assert.False(t, body.ConvertUnderscores())
	require.NotNil(t, body.Embed())
	assert.True(t, *body.Embed())
	assert.Equal(t, "application/json", body.MediaType())
}

func TestParam_Get(t *testing.T) {
	p := New(HeaderKind, Shared{Title: strPtr("Agent"), Default: Required}, Extensions{ConvertUnderscores: true})

	title, ok := p.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Agent", *title.(*string))

	convert, ok := p.Get("convert_underscores")
	require.True(t, ok)
	assert.Equal(t, true, convert)

	_, ok = p.Get("embed")
	assert.False(t, ok)
	_, ok = p.Get("nonexistent")
	assert.False(t, ok)

	assert.True(t, p.IsRequired())
	assert.Equal(t, "header(default=required)", p.String())
}

func TestParam_AccessorsReturnCopies(t *testing.T) {
	title := "Item"
	shared := Shared{Title: &title, Extra: map[string]any{"a": 1}}
	p := New(PathKind, shared, Extensions{})

	title = "changed"
	shared.Extra["a"] = 2
	assert.Equal(t, "Item", p.Title())

	got := p.Shared()
	*got.Title = "mutated"
	got.Extra["b"] = 3
	assert.Equal(t, "Item", p.Title())
	assert.Equal(t, map[string]any{"a": 1}, p.Shared().Extra)

	embed := New(BodyKind, Shared{}, Extensions{Embed: boolPtr(false)})
	*embed.Embed() = true
	assert.False(t, *embed.Embed())
}

func TestParam_Equal(t *testing.T) {
	factory := func() any { return 1 }
	a := New(QueryKind, Shared{Title: strPtr("Q"), DefaultFactory: factory}, Extensions{})
	b := New(QueryKind, Shared{Title: strPtr("Q"), DefaultFactory: factory}, Extensions{})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(QueryKind, Shared{Title: strPtr("Q")}, Extensions{})))
	assert.False(t, a.Equal(New(CookieKind, Shared{Title: strPtr("Q"), DefaultFactory: factory}, Extensions{})))
	assert.False(t, a.Equal(nil))

	var none *Param
	assert.True(t, none.Equal(nil))
}

func TestDeprecated(t *testing.T) {
	p := New(QueryKind, Shared{Deprecated: Deprecated("use q")}, Extensions{})
	require.NotNil(t, p.Deprecation())
	assert.Equal(t, "use q", p.Deprecation().Message)
	assert.Nil(t, New(QueryKind, Shared{}, Extensions{}).Deprecation())
	assert.Equal(t, "required", Required.String())
}
