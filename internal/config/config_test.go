package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/factory"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDir_Defaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/api\n\ngo 1.25\n")

	cfg, err := LoadDir(root, "")
	require.NoError(t, err)

	assert.Equal(t, "example.com/api", cfg.Module)
	assert.Equal(t, "alias", cfg.Render.Strategy)
	assert.Empty(t, cfg.Render.Overrides)
	assert.Equal(t, "params", cfg.Output.Package)
	assert.Equal(t, filepath.Join(cfg.ModuleRoot, "pkg", "params"), cfg.Output.Dir)
	assert.Empty(t, cfg.Source)

	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, factory.UniformStrategy(factory.Alias), s)
	assert.Equal(t, "example.com/api/pkg/location", cfg.RenderOptions().LocationImport)
}

func TestLoadDir_File(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/api\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "paramgen.yaml"), `
module: example.com/override
catalog: specs/catalog.yaml
render:
  strategy: inline
  overrides:
    - name: body.media_type
      strategy: alias
    - name: title
      strategy: alias
output:
  dir: gen/params
  package: apiparams
`)

	cfg, err := LoadDir(root, "")
	require.NoError(t, err)

	assert.Equal(t, "example.com/override", cfg.Module)
	assert.Equal(t, filepath.Join(cfg.ModuleRoot, "specs", "catalog.yaml"), cfg.Catalog)
	assert.Equal(t, filepath.Join(cfg.ModuleRoot, "gen", "params"), cfg.Output.Dir)
	assert.Equal(t, "apiparams", cfg.Output.Package)
	assert.NotEmpty(t, cfg.Source)

	s, err := cfg.Strategy()
	require.NoError(t, err)
	assert.Equal(t, factory.Inline, s.Default)
	assert.Equal(t, map[string]factory.StrategyKind{
		"body.media_type": factory.Alias,
		"title":           factory.Alias,
	}, s.Overrides)
}

func TestLoadDir_EnvOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("PARAMGEN_RENDER_STRATEGY", "inline")
	t.Setenv("PARAMGEN_OUTPUT_PACKAGE", "fromenv")

	cfg, err := LoadDir(root, "")
	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Render.Strategy)
	assert.Equal(t, "fromenv", cfg.Output.Package)
}

func TestLoadDir_Invalid(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "paramgen.yaml"), "render:\n  strategy: verbose\n")

	_, err := LoadDir(root, "")
	assert.True(t, declerrors.HasCode(err, declerrors.ConfigurationErrorCode))

	_, err = LoadDir(root, filepath.Join(root, "missing.yaml"))
	assert.True(t, declerrors.HasCode(err, declerrors.ConfigurationErrorCode))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Render: RenderConfig{Strategy: "alias"}, Output: OutputConfig{Package: "params"}},
		},
		{
			name:    "package is not an identifier",
			cfg:     Config{Render: RenderConfig{Strategy: "alias"}, Output: OutputConfig{Package: "my-params"}},
			wantErr: "must be a valid Go identifier",
		},
		{
			name: "override without name",
			cfg: Config{
				Render: RenderConfig{Strategy: "alias", Overrides: []Override{{Name: "title", Strategy: "inline"}, {Strategy: "inline"}}},
				Output: OutputConfig{Package: "params"},
			},
			wantErr: "render.overrides[1]",
		},
		{
			name: "override with bad strategy",
			cfg: Config{
				Render: RenderConfig{Strategy: "alias", Overrides: []Override{{Name: "title", Strategy: "verbose"}}},
				Output: OutputConfig{Package: "params"},
			},
			wantErr: "override for title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, declerrors.HasCode(err, declerrors.ConfigurationErrorCode))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEnsureOutputDir(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Dir: filepath.Join(t.TempDir(), "a", "b")}}
	require.NoError(t, cfg.EnsureOutputDir())

	info, err := os.Stat(cfg.Output.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
