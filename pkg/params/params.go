// Package params declares API parameters for each request location.
//
// Every constructor takes an options struct whose fields are the declared
// parameters. A nil field is not supplied and takes the parameter's
// default:
//
//	id := params.Path(params.PathOptions{Title: params.String("Item ID")})
//	q := params.Query(params.QueryOptions{MaxLength: params.Int(50)})
//
// The options structs are generated by paramgen from the parameter catalog.
package params

//go:generate go run github.com/toyz/paramdecl/cmd/paramgen generate

import (
	"github.com/toyz/paramdecl/internal/catalog"
	"github.com/toyz/paramdecl/internal/factory"
	"github.com/toyz/paramdecl/pkg/location"
)

var constructors = mustSynthesize()

func mustSynthesize() *factory.Set {
	cat, err := catalog.Load()
	if err != nil {
		panic("params: loading parameter catalog: " + err.Error())
	}
	set, err := factory.Synthesize(cat.Registry, factory.SpecsFromCatalog(cat)...)
	if err != nil {
		panic("params: synthesizing constructors: " + err.Error())
	}
	return set
}

// build runs a synthesized constructor. The options structs only admit
// declared parameters of the declared types, so a failure is a bug in the
// generated code.
func build(name string, opts any) *location.Param {
	p, err := constructors.MustGet(name).CallOptions(opts)
	if err != nil {
		panic("params: " + err.Error())
	}
	return p
}

// Constructors returns the synthesized constructors, for tooling
func Constructors() *factory.Set {
	return constructors
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// String returns a pointer to s
func String(s string) *string { return &s }

// Float returns a pointer to f
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i
func Int(i int) *int { return &i }

// Bool returns a pointer to b
func Bool(b bool) *bool { return &b }
