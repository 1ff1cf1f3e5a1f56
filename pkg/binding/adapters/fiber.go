package adapters

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/toyz/paramdecl/pkg/binding"
)

// FiberSource implements binding.Source for Fiber v2. Values are copied out
// of fasthttp's reused buffers.
type FiberSource struct {
	ctx *fiber.Ctx
}

var _ binding.Source = (*FiberSource)(nil)

// NewFiberSource wraps a Fiber request context
func NewFiberSource(c *fiber.Ctx) *FiberSource {
	return &FiberSource{ctx: c}
}

// PathParam returns path parameter by name
func (fs *FiberSource) PathParam(name string) (string, bool) {
	for _, n := range fs.ctx.Route().Params {
		if n == name {
			return strings.Clone(fs.ctx.Params(name)), true
		}
	}
	return "", false
}

// QueryParam returns query parameter by name
func (fs *FiberSource) QueryParam(name string) (string, bool) {
	args := fs.ctx.Request().URI().QueryArgs()
	if !args.Has(name) {
		return "", false
	}
	return string(args.Peek(name)), true
}

// Header returns request header value
func (fs *FiberSource) Header(name string) (string, bool) {
	value := fs.ctx.Request().Header.Peek(name)
	if value == nil {
		return "", false
	}
	return string(value), true
}

// Cookie returns a cookie value
func (fs *FiberSource) Cookie(name string) (string, bool) {
	value := fs.ctx.Request().Header.Cookie(name)
	if value == nil {
		return "", false
	}
	return string(value), true
}

// FormValue returns form value by name, from a urlencoded or multipart body
func (fs *FiberSource) FormValue(name string) (string, bool) {
	if args := fs.ctx.Request().PostArgs(); args.Has(name) {
		return string(args.Peek(name)), true
	}
	form, err := fs.ctx.MultipartForm()
	if err != nil {
		return "", false
	}
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// FormFile returns uploaded file by name
func (fs *FiberSource) FormFile(name string) (*multipart.FileHeader, error) {
	return fs.ctx.FormFile(name)
}

// Body returns a copy of the request body
func (fs *FiberSource) Body() ([]byte, error) {
	return append([]byte(nil), fs.ctx.Body()...), nil
}
