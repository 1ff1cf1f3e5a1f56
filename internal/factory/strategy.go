package factory

import (
	"fmt"
	"sort"

	"github.com/toyz/paramdecl/internal/descriptor"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/utils"
)

// StrategyKind names a way of rendering a descriptor into constructor source
type StrategyKind string

const (
	// Inline repeats the doc and literal type on every constructor field
	Inline StrategyKind = "inline"
	// Alias declares one documented type alias per descriptor and has every
	// constructor field reference it
	Alias StrategyKind = "alias"
)

// ParseStrategyKind validates a strategy name
func ParseStrategyKind(s string) (StrategyKind, error) {
	kind := StrategyKind(s)
	if err := utils.IsOneOf("strategy", Inline, Alias)(kind); err != nil {
		return "", fmt.Errorf("unknown render strategy %q: %w", s, err)
	}
	return kind, nil
}

// Strategy selects a rendering per descriptor: a global default plus
// overrides keyed by registry key or parameter name
type Strategy struct {
	Default   StrategyKind
	Overrides map[string]StrategyKind
}

// UniformStrategy renders every descriptor the same way
func UniformStrategy(kind StrategyKind) Strategy {
	return Strategy{Default: kind}
}

// For returns the strategy of one descriptor. An override on the registry
// key wins over one on the parameter name.
func (s Strategy) For(d *descriptor.Descriptor) StrategyKind {
	if kind, ok := s.Overrides[d.Name()]; ok {
		return kind
	}
	if kind, ok := s.Overrides[d.ParamName()]; ok {
		return kind
	}
	if s.Default == "" {
		return Alias
	}
	return s.Default
}

// Validate checks every strategy name
func (s Strategy) Validate() error {
	if s.Default != "" {
		if _, err := ParseStrategyKind(string(s.Default)); err != nil {
			return err
		}
	}
	keys := make([]string, 0, len(s.Overrides))
	for k := range s.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := ParseStrategyKind(string(s.Overrides[k])); err != nil {
			return fmt.Errorf("override for %s: %w", k, err)
		}
	}
	return nil
}

// CheckOverrides reports the first override, in name order, that matches
// neither a registry key nor a parameter name of reg
func (s Strategy) CheckOverrides(reg *descriptor.Registry) error {
	known := make(map[string]bool)
	available := reg.Names()
	for _, d := range reg.Descriptors() {
		known[d.Name()] = true
		if !known[d.ParamName()] {
			known[d.ParamName()] = true
			available = append(available, d.ParamName())
		}
	}

	names := make([]string, 0, len(s.Overrides))
	for name := range s.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !known[name] {
			err := declerrors.NewUnknownParameterError(name, available)
			err.WithContext("setting", "render.overrides")
			return err
		}
	}
	return nil
}

// String describes the strategy, "mixed" when overrides are present
func (s Strategy) String() string {
	def := s.Default
	if def == "" {
		def = Alias
	}
	if len(s.Overrides) > 0 {
		return string(def) + " (mixed)"
	}
	return string(def)
}
