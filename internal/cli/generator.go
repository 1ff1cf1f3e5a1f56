// Package cli implements the paramgen commands on top of the catalog,
// factory and config packages.
package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/paramdecl/internal/catalog"
	"github.com/toyz/paramdecl/internal/config"
	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/factory"
	"github.com/toyz/paramdecl/internal/utils"
)

// GenerationSummary describes one generation run
type GenerationSummary struct {
	Catalog        string
	Descriptors    int
	Constructors   int
	GeneratedFiles []string
	RemovedFiles   []string
	Stats          factory.Stats
}

// Drift is a generated file whose on-disk content differs from a fresh render
type Drift struct {
	File   string
	Reason string
}

func (d Drift) String() string {
	return fmt.Sprintf("%s: %s", d.File, d.Reason)
}

// Generator coordinates loading, synthesis and rendering
type Generator struct {
	diagnostics *utils.DiagnosticSystem
	cleaner     *Cleaner
	summary     GenerationSummary
}

// NewGenerator creates a generator reporting through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		diagnostics: diagnostics,
		cleaner:     NewCleaner(),
	}
}

// Summary returns the summary of the last run
func (g *Generator) Summary() GenerationSummary {
	return g.summary
}

// LoadCatalog loads the catalog named by cfg, or the embedded one
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(cfg.Catalog)
}

// Synthesize loads the catalog and builds its constructor set
func Synthesize(cfg *config.Config) (*catalog.Catalog, *factory.Set, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	set, err := factory.Synthesize(cat.Registry, factory.SpecsFromCatalog(cat)...)
	if err != nil {
		return nil, nil, err
	}
	return cat, set, nil
}

func (g *Generator) render(cfg *config.Config) ([]factory.GeneratedFile, error) {
	g.summary = GenerationSummary{}

	g.diagnostics.Verbose("Loading catalog")
	cat, set, err := Synthesize(cfg)
	if err != nil {
		return nil, err
	}
	g.summary.Catalog = cat.Source
	g.summary.Descriptors = cat.Registry.Len()
	g.summary.Constructors = len(set.Names())
	g.diagnostics.Debug("Catalog %s: %d descriptors, %d constructors", cat.Source, g.summary.Descriptors, g.summary.Constructors)

	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, declerrors.WrapConfigurationError("render", "strategy", err)
	}
	if err := strategy.CheckOverrides(cat.Registry); err != nil {
		return nil, err
	}
	g.diagnostics.Verbose("Rendering with %s strategy", strategy)

	opts := cfg.RenderOptions()
	files, err := factory.Render(set, strategy, opts)
	if err != nil {
		return nil, err
	}
	g.summary.Stats, err = factory.Measure(set, strategy, opts)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Run renders the constructors and writes them to the output directory.
// Generated files the current strategy no longer produces are removed.
func (g *Generator) Run(cfg *config.Config) error {
	files, err := g.render(cfg)
	if err != nil {
		return err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	keep := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(cfg.Output.Dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0644); err != nil {
			return declerrors.WrapFileSystemError("write", path, err)
		}
		g.diagnostics.Verbose("Wrote %s", path)
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, path)
		keep = append(keep, file.Name)
	}

	removed, err := g.cleaner.CleanGeneratedFiles(cfg.Output.Dir, keep...)
	if err != nil {
		return err
	}
	for _, path := range removed {
		g.diagnostics.Verbose("Removed stale %s", path)
	}
	g.summary.RemovedFiles = removed
	return nil
}

// Check renders the constructors and compares them with the files on disk
func (g *Generator) Check(cfg *config.Config) ([]Drift, error) {
	files, err := g.render(cfg)
	if err != nil {
		return nil, err
	}

	var drift []Drift
	expected := make(map[string]bool, len(files))
	for _, file := range files {
		expected[file.Name] = true
		path := filepath.Join(cfg.Output.Dir, file.Name)
		current, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			drift = append(drift, Drift{File: path, Reason: "missing"})
		case err != nil:
			return nil, declerrors.WrapFileSystemError("read", path, err)
		case !bytes.Equal(current, file.Content):
			drift = append(drift, Drift{File: path, Reason: "out of date"})
		}
	}

	stale, err := g.cleaner.FindGeneratedFiles(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	for _, path := range stale {
		if !expected[filepath.Base(path)] {
			drift = append(drift, Drift{File: path, Reason: "stale"})
		}
	}
	return drift, nil
}
