// Package binding locates the raw request value of a declared parameter.
// It does not convert or validate values.
package binding

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/toyz/paramdecl/pkg/location"
)

// ErrNotPresent is returned by LookupFile when the request carries no file
// under the parameter's name
var ErrNotPresent = errors.New("binding: parameter not present")

// Source provides framework-agnostic access to the parts of a request a
// parameter can be read from. Each lookup reports whether the value was
// present at all.
type Source interface {
	PathParam(name string) (string, bool)
	QueryParam(name string) (string, bool)
	Header(name string) (string, bool)
	Cookie(name string) (string, bool)
	FormValue(name string) (string, bool)
	FormFile(name string) (*multipart.FileHeader, error)
	Body() ([]byte, error)
}

// WireName returns the name a parameter has on the wire: its alias when one
// is set, otherwise the declared name. Header names have underscores
// converted to hyphens unless the parameter turns that off.
func WireName(name string, p *location.Param) string {
	if alias := p.Alias(); alias != "" {
		name = alias
	}
	if p.Kind() == location.HeaderKind && p.ConvertUnderscores() {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return name
}

// Lookup returns the raw value of a parameter and whether the request
// carried it. Body parameters yield the whole request body; file
// parameters yield the uploaded file name.
func Lookup(src Source, name string, p *location.Param) (string, bool) {
	wire := WireName(name, p)
	switch p.Kind() {
	case location.PathKind:
		return src.PathParam(wire)
	case location.QueryKind:
		return src.QueryParam(wire)
	case location.HeaderKind:
		return src.Header(wire)
	case location.CookieKind:
		return src.Cookie(wire)
	case location.FormKind:
		return src.FormValue(wire)
	case location.FileKind:
		fh, err := src.FormFile(wire)
		if err != nil || fh == nil {
			return "", false
		}
		return fh.Filename, true
	case location.BodyKind:
		body, err := src.Body()
		if err != nil || len(body) == 0 {
			return "", false
		}
		return string(body), true
	default:
		return "", false
	}
}

// LookupFile returns the uploaded file of a file parameter
func LookupFile(src Source, name string, p *location.Param) (*multipart.FileHeader, error) {
	if p.Kind() != location.FileKind {
		return nil, errors.New("binding: " + p.Kind().String() + " parameter is not a file")
	}
	fh, err := src.FormFile(WireName(name, p))
	if err != nil {
		return nil, errors.Join(ErrNotPresent, err)
	}
	if fh == nil {
		return nil, ErrNotPresent
	}
	return fh, nil
}
