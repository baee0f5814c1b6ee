// Package config loads devkit defaults from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/devkit/internal/dispatch"
	"github.com/idelchi/devkit/internal/pack"
	"github.com/idelchi/devkit/internal/walk"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".devkit.yml"

// Environment variables overriding the pack and exec settings.
const (
	EnvBuildCommand = "DEVKIT_BUILD_CMD"
	EnvPackCommand  = "DEVKIT_PACK_CMD"
	EnvManifest     = "DEVKIT_MANIFEST"
)

// Config represents the top-level configuration structure.
type Config struct {
	DS   DSConfig   `yaml:"ds"`
	Exec ExecConfig `yaml:"exec"`
	Pack PackConfig `yaml:"pack"`
}

// DSConfig holds defaults for the ds command.
type DSConfig struct {
	MaxDepth int `yaml:"maxDepth"` // 0 = unlimited
	TopCount int `yaml:"topCount"`
}

// ExecConfig holds defaults for the exec command.
type ExecConfig struct {
	MaxDepth int      `yaml:"maxDepth"` // 0 = immediate children only
	Manifest string   `yaml:"manifest"`
	Ignore   []string `yaml:"ignore"`
}

// PackConfig holds the pack workflow commands.
type PackConfig struct {
	Build   string `yaml:"build"`
	Pack    string `yaml:"pack"`
	Pattern string `yaml:"pattern"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DS: DSConfig{
			MaxDepth: 2,
			TopCount: 10,
		},
		Exec: ExecConfig{
			MaxDepth: 0,
			Manifest: dispatch.DefaultManifest,
			Ignore:   append([]string(nil), walk.DefaultIgnored...),
		},
		Pack: PackConfig{
			Build:   pack.DefaultBuildCommand,
			Pack:    pack.DefaultPackCommand,
			Pattern: pack.DefaultPattern,
		},
	}
}

// Load reads filename over the defaults and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Resolve builds the effective configuration: defaults, then the config file, then the environment.
//
// An explicit filename must exist. Without one, DefaultFile in the working
// directory is used if present. The returned source names the file used, or is empty.
func Resolve(filename string, lookup func(string) (string, bool)) (*Config, string, error) {
	source := filename

	if source == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			source = DefaultFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("checking %s: %w", DefaultFile, err)
		}
	}

	cfg := Default()

	if source != "" {
		loaded, err := Load(source)
		if err != nil {
			return nil, "", err
		}

		cfg = *loaded
		source = filepath.Clean(source)
	}

	if lookup != nil {
		cfg.ApplyEnv(lookup)

		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("config validation failed: %w", err)
		}
	}

	return &cfg, source, nil
}

// ApplyEnv overrides settings from environment variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBuildCommand); ok {
		c.Pack.Build = v
	}

	if v, ok := lookup(EnvPackCommand); ok {
		c.Pack.Pack = v
	}

	if v, ok := lookup(EnvManifest); ok {
		c.Exec.Manifest = v
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if err := c.DS.Validate(); err != nil {
		return err
	}

	if err := c.Exec.Validate(); err != nil {
		return err
	}

	return c.Pack.Validate()
}

// Validate checks the DSConfig for correctness.
func (d *DSConfig) Validate() error {
	if d.MaxDepth < 0 {
		return fmt.Errorf("ds.maxDepth cannot be negative, got %d", d.MaxDepth)
	}

	if d.TopCount <= 0 {
		return fmt.Errorf("ds.topCount must be greater than 0, got %d", d.TopCount)
	}

	return nil
}

// Validate checks the ExecConfig for correctness.
func (e *ExecConfig) Validate() error {
	if e.MaxDepth < 0 {
		return fmt.Errorf("exec.maxDepth cannot be negative, got %d", e.MaxDepth)
	}

	if strings.TrimSpace(e.Manifest) == "" {
		return errors.New("exec.manifest cannot be empty")
	}

	if strings.ContainsAny(e.Manifest, `/\`) {
		return fmt.Errorf("exec.manifest must be a file name, got %q", e.Manifest)
	}

	return nil
}

// Validate checks the PackConfig for correctness.
func (p *PackConfig) Validate() error {
	if strings.TrimSpace(p.Pack) == "" {
		return errors.New("pack.pack cannot be empty")
	}

	if _, err := filepath.Match(p.Pattern, ""); err != nil || p.Pattern == "" {
		return fmt.Errorf("invalid pack.pattern %q", p.Pattern)
	}

	return nil
}
