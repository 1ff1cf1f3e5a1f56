package binding

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/paramdecl/pkg/params"
)

type mapSource struct {
	path    map[string]string
	query   map[string]string
	headers map[string]string
	cookies map[string]string
	form    map[string]string
	files   map[string]*multipart.FileHeader
	body    []byte
}

func (m *mapSource) PathParam(name string) (string, bool) {
	v, ok := m.path[name]
	return v, ok
}

func (m *mapSource) QueryParam(name string) (string, bool) {
	v, ok := m.query[name]
	return v, ok
}

func (m *mapSource) Header(name string) (string, bool) {
	v, ok := m.headers[name]
	return v, ok
}

func (m *mapSource) Cookie(name string) (string, bool) {
	v, ok := m.cookies[name]
	return v, ok
}

func (m *mapSource) FormValue(name string) (string, bool) {
	v, ok := m.form[name]
	return v, ok
}

func (m *mapSource) Body() ([]byte, error) {
	return m.body, nil
}

func (m *mapSource) FormFile(name string) (*multipart.FileHeader, error) {
	fh, ok := m.files[name]
	if !ok {
		return nil, errors.New("http: no such file")
	}
	return fh, nil
}

func TestWireName(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "declared name",
			got:  WireName("item_id", params.Path(params.PathOptions{})),
			want: "item_id",
		},
		{
			name: "alias wins",
			got:  WireName("item_id", params.Query(params.QueryOptions{Alias: params.String("item-id")})),
			want: "item-id",
		},
		{
			name: "header underscores converted",
			got:  WireName("user_agent", params.Header(params.HeaderOptions{})),
			want: "user-agent",
		},
		{
			name: "header conversion disabled",
			got:  WireName("user_agent", params.Header(params.HeaderOptions{ConvertUnderscores: params.Bool(false)})),
			want: "user_agent",
		},
		{
			name: "header alias converted",
			got:  WireName("agent", params.Header(params.HeaderOptions{Alias: params.String("x_agent")})),
			want: "x-agent",
		},
		{
			name: "cookie keeps underscores",
			got:  WireName("session_id", params.Cookie(params.CookieOptions{})),
			want: "session_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLookup_ByKind(t *testing.T) {
	src := &mapSource{
		path:    map[string]string{"item_id": "42"},
		query:   map[string]string{"q": "search", "empty": ""},
		headers: map[string]string{"x-token": "abc"},
		cookies: map[string]string{"session": "s1"},
		form:    map[string]string{"name": "widget"},
		files:   map[string]*multipart.FileHeader{"upload": {Filename: "a.txt"}},
		body:    []byte(`{"name":"widget"}`),
	}

	tests := []struct {
		name    string
		value   string
		present bool
		p       func() (string, bool)
	}{
		{name: "path", p: func() (string, bool) { return Lookup(src, "item_id", params.Path(params.PathOptions{})) }, value: "42", present: true},
		{name: "query", p: func() (string, bool) { return Lookup(src, "q", params.Query(params.QueryOptions{})) }, value: "search", present: true},
		{name: "empty query is present", p: func() (string, bool) { return Lookup(src, "empty", params.Query(params.QueryOptions{})) }, value: "", present: true},
		{name: "missing query", p: func() (string, bool) { return Lookup(src, "page", params.Query(params.QueryOptions{})) }},
		{name: "header", p: func() (string, bool) { return Lookup(src, "x_token", params.Header(params.HeaderOptions{})) }, value: "abc", present: true},
		{name: "cookie alias", p: func() (string, bool) {
			return Lookup(src, "session_id", params.Cookie(params.CookieOptions{Alias: params.String("session")}))
		}, value: "s1", present: true},
		{name: "form", p: func() (string, bool) { return Lookup(src, "name", params.Form(params.FormOptions{})) }, value: "widget", present: true},
		{name: "file", p: func() (string, bool) { return Lookup(src, "upload", params.File(params.FileOptions{})) }, value: "a.txt", present: true},
		{name: "missing file", p: func() (string, bool) { return Lookup(src, "avatar", params.File(params.FileOptions{})) }},
		{name: "body", p: func() (string, bool) { return Lookup(src, "item", params.Body(params.BodyOptions{})) }, value: `{"name":"widget"}`, present: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, present := tt.p()
			assert.Equal(t, tt.present, present)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestLookup_EmptyBodyIsMissing(t *testing.T) {
	_, present := Lookup(&mapSource{}, "item", params.Body(params.BodyOptions{}))
	assert.False(t, present)
}

func TestLookupFile(t *testing.T) {
	src := &mapSource{files: map[string]*multipart.FileHeader{"upload": {Filename: "a.txt", Size: 3}}}

	fh, err := LookupFile(src, "upload", params.File(params.FileOptions{}))
	require.NoError(t, err)
	assert.Equal(t, int64(3), fh.Size)

	_, err = LookupFile(src, "avatar", params.File(params.FileOptions{}))
	assert.ErrorIs(t, err, ErrNotPresent)

	_, err = LookupFile(src, "upload", params.Form(params.FormOptions{}))
	assert.ErrorContains(t, err, "form parameter is not a file")
}
