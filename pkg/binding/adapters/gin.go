package adapters

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/toyz/paramdecl/pkg/binding"
)

// GinSource implements binding.Source for Gin
type GinSource struct {
	ctx *gin.Context
}

var _ binding.Source = (*GinSource)(nil)

// NewGinSource wraps a Gin request context
func NewGinSource(c *gin.Context) *GinSource {
	return &GinSource{ctx: c}
}

// PathParam returns path parameter by name
func (gs *GinSource) PathParam(name string) (string, bool) {
	return gs.ctx.Params.Get(name)
}

// QueryParam returns query parameter by name
func (gs *GinSource) QueryParam(name string) (string, bool) {
	return gs.ctx.GetQuery(name)
}

// Header returns request header value
func (gs *GinSource) Header(name string) (string, bool) {
	values := gs.ctx.Request.Header.Values(name)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Cookie returns a cookie value
func (gs *GinSource) Cookie(name string) (string, bool) {
	value, err := gs.ctx.Cookie(name)
	if err != nil {
		return "", false
	}
	return value, true
}

// FormValue returns form value by name
func (gs *GinSource) FormValue(name string) (string, bool) {
	return gs.ctx.GetPostForm(name)
}

// FormFile returns uploaded file by name
func (gs *GinSource) FormFile(name string) (*multipart.FileHeader, error) {
	return gs.ctx.FormFile(name)
}

// Body returns the request body
func (gs *GinSource) Body() ([]byte, error) {
	return gs.ctx.GetRawData()
}
