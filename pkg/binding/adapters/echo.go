package adapters

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/toyz/paramdecl/pkg/binding"
)

// EchoSource implements binding.Source for Echo v4
type EchoSource struct {
	context echo.Context
}

var _ binding.Source = (*EchoSource)(nil)

// NewEchoSource wraps an Echo request context
func NewEchoSource(c echo.Context) *EchoSource {
	return &EchoSource{context: c}
}

// PathParam returns path parameter by name
func (es *EchoSource) PathParam(name string) (string, bool) {
	for i, n := range es.context.ParamNames() {
		if n == name {
			values := es.context.ParamValues()
			if i < len(values) {
				return values[i], true
			}
		}
	}
	return "", false
}

// QueryParam returns query parameter by name
func (es *EchoSource) QueryParam(name string) (string, bool) {
	values, ok := es.context.QueryParams()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Header returns request header value
func (es *EchoSource) Header(name string) (string, bool) {
	values := es.context.Request().Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Cookie returns a cookie value
func (es *EchoSource) Cookie(name string) (string, bool) {
	c, err := es.context.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// FormValue returns form value by name
func (es *EchoSource) FormValue(name string) (string, bool) {
	params, err := es.context.FormParams()
	if err != nil {
		return "", false
	}
	values, ok := params[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// FormFile returns uploaded file by name
func (es *EchoSource) FormFile(name string) (*multipart.FileHeader, error) {
	return es.context.FormFile(name)
}

// Body returns the request body
func (es *EchoSource) Body() ([]byte, error) {
	if es.context.Request().Body == nil {
		return nil, nil
	}
	return io.ReadAll(es.context.Request().Body)
}
