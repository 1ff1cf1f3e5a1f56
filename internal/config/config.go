// Package config loads paramgen settings from a config file, the
// environment and go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	declerrors "github.com/toyz/paramdecl/internal/errors"
	"github.com/toyz/paramdecl/internal/factory"
	"github.com/toyz/paramdecl/internal/utils"
)

// DefaultModule is used when no go.mod can be found
const DefaultModule = "github.com/toyz/paramdecl"

// EnvPrefix prefixes environment overrides, e.g. PARAMGEN_RENDER_STRATEGY
const EnvPrefix = "PARAMGEN"

// Config holds the generator settings
type Config struct {
	Module  string       `mapstructure:"module"`  // module path of the generated code
	Catalog string       `mapstructure:"catalog"` // external catalog, empty for the embedded one
	Render  RenderConfig `mapstructure:"render"`
	Output  OutputConfig `mapstructure:"output"`

	// ModuleRoot is the directory holding go.mod, empty when none was found
	ModuleRoot string `mapstructure:"-"`
	// Source is the config file that was read, empty when defaults were used
	Source string `mapstructure:"-"`
}

// RenderConfig selects how descriptors are rendered
type RenderConfig struct {
	Strategy  string     `mapstructure:"strategy"`
	Overrides []Override `mapstructure:"overrides"`
}

// Override renders one descriptor, by registry key or parameter name,
// with a strategy other than the global one
type Override struct {
	Name     string `mapstructure:"name"`
	Strategy string `mapstructure:"strategy"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Package string `mapstructure:"package"`
}

// Load reads the configuration for the current directory. An empty
// configPath looks for paramgen.yaml, .toml or .json; a missing file means
// defaults.
func Load(configPath string) (*Config, error) {
	return LoadDir(".", configPath)
}

// LoadDir is like Load but resolves the config file and go.mod from dir
func LoadDir(dir, configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("paramgen")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, declerrors.WrapConfigurationError("paramgen", "read", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, declerrors.WrapConfigurationError("paramgen", "decode", err)
	}
	cfg.Source = v.ConfigFileUsed()

	cfg.resolveModule(dir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("module", "")
	v.SetDefault("catalog", "")
	v.SetDefault("render.strategy", string(factory.Alias))
	v.SetDefault("render.overrides", []Override{})
	v.SetDefault("output.dir", "pkg/params")
	v.SetDefault("output.package", "params")
}

// resolveModule fills Module from go.mod when unset and anchors relative
// output paths at the module root
func (c *Config) resolveModule(dir string) {
	modulePath, root, err := utils.ResolveModulePath(dir)
	if err == nil {
		c.ModuleRoot = root
		if c.Module == "" {
			c.Module = modulePath
		}
	}
	if c.Module == "" {
		c.Module = DefaultModule
	}

	base := c.ModuleRoot
	if base == "" {
		base = dir
	}
	if !filepath.IsAbs(c.Output.Dir) {
		c.Output.Dir = filepath.Join(base, c.Output.Dir)
	}
	if c.Catalog != "" && !filepath.IsAbs(c.Catalog) {
		c.Catalog = filepath.Join(base, c.Catalog)
	}
}

// Validate checks strategy names and output settings
func (c *Config) Validate() error {
	if err := utils.IsValidGoIdentifier("output.package")(c.Output.Package); err != nil {
		return declerrors.WrapConfigurationError("output.package", "validate", err)
	}
	names := make([]string, len(c.Render.Overrides))
	for i, o := range c.Render.Overrides {
		names[i] = o.Name
	}
	if err := utils.ValidateEach("render.overrides", utils.NotEmpty("name"))(names); err != nil {
		return declerrors.WrapConfigurationError("render.overrides", "validate", err)
	}
	if _, err := c.Strategy(); err != nil {
		return declerrors.WrapConfigurationError("render", "validate", err)
	}
	return nil
}

// Strategy builds the render strategy
func (c *Config) Strategy() (factory.Strategy, error) {
	kind, err := factory.ParseStrategyKind(c.Render.Strategy)
	if err != nil {
		return factory.Strategy{}, err
	}
	s := factory.Strategy{Default: kind}
	for _, o := range c.Render.Overrides {
		if o.Name == "" {
			return factory.Strategy{}, fmt.Errorf("override without a name")
		}
		k, err := factory.ParseStrategyKind(o.Strategy)
		if err != nil {
			return factory.Strategy{}, fmt.Errorf("override for %s: %w", o.Name, err)
		}
		if s.Overrides == nil {
			s.Overrides = make(map[string]factory.StrategyKind)
		}
		s.Overrides[o.Name] = k
	}
	return s, nil
}

// RenderOptions returns the factory options for this configuration
func (c *Config) RenderOptions() factory.RenderOptions {
	return factory.RenderOptions{
		Package:        c.Output.Package,
		LocationImport: c.Module + "/pkg/location",
		Generator:      "paramgen",
	}
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return declerrors.WrapFileSystemError("create", c.Output.Dir, err)
	}
	return nil
}
