package adapters

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/paramdecl/pkg/binding"
	"github.com/toyz/paramdecl/pkg/params"
)

func TestEchoSource_Lookup(t *testing.T) {
	e := echo.New()

	var found map[string]string
	e.POST("/items/:item_id", func(c echo.Context) error {
		found = collect(NewEchoSource(c))
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, newRequest(t))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, expected, found)
}

func TestEchoSource_Body(t *testing.T) {
	e := echo.New()

	var body string
	var present bool
	e.PUT("/items", func(c echo.Context) error {
		body, present = binding.Lookup(NewEchoSource(c), "item", params.Body(params.BodyOptions{}))
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPut, "/items", strings.NewReader(`{"name":"widget"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, present)
	assert.JSONEq(t, `{"name":"widget"}`, body)
}

func TestEchoSource_MissingPathParam(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := NewEchoSource(c).PathParam("item_id")
	assert.False(t, ok)

	_, err := NewEchoSource(c).FormFile("upload")
	assert.Error(t, err)
}
