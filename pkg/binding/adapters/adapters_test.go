package adapters

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toyz/paramdecl/pkg/binding"
	"github.com/toyz/paramdecl/pkg/location"
	"github.com/toyz/paramdecl/pkg/params"
)

var declared = map[string]*location.Param{
	"item_id":      params.Path(params.PathOptions{}),
	"q":            params.Query(params.QueryOptions{}),
	"empty":        params.Query(params.QueryOptions{}),
	"page":         params.Query(params.QueryOptions{Default: 1}),
	"x_request_id": params.Header(params.HeaderOptions{}),
	"session_id":   params.Cookie(params.CookieOptions{Alias: params.String("session")}),
	"name":         params.Form(params.FormOptions{}),
	"upload":       params.File(params.FileOptions{}),
}

var expected = map[string]string{
	"item_id":      "42",
	"q":            "search",
	"empty":        "",
	"x_request_id": "abc",
	"session_id":   "s1",
	"name":         "widget",
	"upload":       "a.txt",
}

func collect(src binding.Source) map[string]string {
	found := make(map[string]string)
	for name, p := range declared {
		if value, ok := binding.Lookup(src, name, p); ok {
			found[name] = value
		}
	}
	return found
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "widget"))
	part, err := w.CreateFormFile("upload", "a.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/items/42?q=search&empty=", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-Id", "abc")
	req.AddCookie(&http.Cookie{Name: "session", Value: "s1"})
	return req
}
