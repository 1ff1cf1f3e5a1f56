package descriptor

import (
	"slices"

	declerrors "github.com/toyz/paramdecl/internal/errors"
)

// Group is an ordered set of descriptors keyed by parameter name. Groups are
// immutable; Extend and Replace return new groups sharing the same
// descriptor pointers.
type Group struct {
	name        string
	descriptors []*Descriptor
	index       map[string]int
}

func newGroup(name string, descs []*Descriptor) (*Group, error) {
	g := &Group{
		name:        name,
		descriptors: make([]*Descriptor, 0, len(descs)),
		index:       make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		param := d.ParamName()
		if _, exists := g.index[param]; exists {
			return nil, declerrors.NewDuplicateNameError("group "+name, param).WithLocation(d.Location())
		}
		g.index[param] = len(g.descriptors)
		g.descriptors = append(g.descriptors, d)
	}
	return g, nil
}

// Name returns the group name
func (g *Group) Name() string {
	return g.name
}

// Len returns the number of descriptors
func (g *Group) Len() int {
	return len(g.descriptors)
}

// Names returns the parameter names in order
func (g *Group) Names() []string {
	names := make([]string, len(g.descriptors))
	for i, d := range g.descriptors {
		names[i] = d.ParamName()
	}
	return names
}

// Descriptors returns the descriptors in order
func (g *Group) Descriptors() []*Descriptor {
	return slices.Clone(g.descriptors)
}

// Lookup finds a descriptor by parameter name
func (g *Group) Lookup(param string) (*Descriptor, bool) {
	i, ok := g.index[param]
	if !ok {
		return nil, false
	}
	return g.descriptors[i], true
}

// Has reports whether the group declares param
func (g *Group) Has(param string) bool {
	_, ok := g.index[param]
	return ok
}

// Extend returns a new group holding the group's descriptors followed by
// extras. A parameter name present on both sides is a DuplicateNameError.
func Extend(g *Group, name string, extras ...*Descriptor) (*Group, error) {
	descs := make([]*Descriptor, 0, g.Len()+len(extras))
	descs = append(descs, g.descriptors...)
	descs = append(descs, extras...)
	return newGroup(name, descs)
}

// Replace returns a copy of the group where each replacement takes the
// position of the descriptor with the same parameter name. Replacing a
// parameter the group does not hold is an UnknownParameterError.
func (g *Group) Replace(replacements ...*Descriptor) (*Group, error) {
	descs := slices.Clone(g.descriptors)
	for _, r := range replacements {
		i, ok := g.index[r.ParamName()]
		if !ok {
			return nil, declerrors.NewUnknownParameterError(r.ParamName(), g.Names()).WithLocation(r.Location())
		}
		descs[i] = r
	}
	return newGroup(g.name, descs)
}
