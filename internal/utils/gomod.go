package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ParseModulePath extracts the module path from a go.mod file
func ParseModulePath(goModPath string) (string, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod file: %w", err)
	}

	path := modfile.ModulePath(content)
	if path == "" {
		return "", fmt.Errorf("no module declaration found in %s", goModPath)
	}
	return path, nil
}

// FindGoModFile searches for go.mod starting from the given directory and walking up
func FindGoModFile(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if info, err := os.Stat(goModPath); err == nil && !info.IsDir() {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("go.mod file not found above %s", startDir)
}

// ResolveModulePath returns the module path of the module containing dir,
// and the directory of that module's go.mod
func ResolveModulePath(dir string) (modulePath, moduleRoot string, err error) {
	goModPath, err := FindGoModFile(dir)
	if err != nil {
		return "", "", err
	}
	modulePath, err = ParseModulePath(goModPath)
	if err != nil {
		return "", "", err
	}
	return modulePath, filepath.Dir(goModPath), nil
}
