package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/factory"
)

// generatedMarker is the standard marker of generated Go files
const generatedMarker = "// Code generated by "

// Cleaner handles cleaning up generated files
type Cleaner struct {
	names []string
}

// NewCleaner creates a cleaner for the files paramgen writes
func NewCleaner() *Cleaner {
	return &Cleaner{
		names: []string{factory.ConstructorsFile, factory.AliasesFile},
	}
}

// FindGeneratedFiles returns the generated files present in dir. Files
// with a generated name but no generated header are left alone.
func (c *Cleaner) FindGeneratedFiles(dir string) ([]string, error) {
	var found []string
	for _, name := range c.names {
		path := filepath.Join(dir, name)
		generated, err := isGenerated(path)
		if err != nil {
			return nil, declerrors.WrapFileSystemError("read", path, err)
		}
		if generated {
			found = append(found, path)
		}
	}
	return found, nil
}

// CleanGeneratedFiles removes generated files from dir, except those named
// in keep, and returns the removed paths
func (c *Cleaner) CleanGeneratedFiles(dir string, keep ...string) ([]string, error) {
	found, err := c.FindGeneratedFiles(dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, path := range found {
		if contains(keep, filepath.Base(path)) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, declerrors.WrapFileSystemError("remove", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "package ") {
			return false, nil
		}
		if strings.HasPrefix(line, generatedMarker) && strings.HasSuffix(line, "DO NOT EDIT.") {
			return true, nil
		}
	}
	return false, scanner.Err()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
