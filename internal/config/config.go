// Package config loads and validates inlinebundle configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-inlinebundle/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config value")
	ErrInvalidPolicy   = errors.New("invalid missing-tag policy")
)

// Defaults applied to empty fields by WithDefaults.
const (
	DefaultDistDir      = "frontend/dist"
	DefaultHTML         = "index.html"
	DefaultAssetsDir    = "assets"
	DefaultOnMissingTag = OnMissingTagWarn
)

// Missing-tag policies.
const (
	OnMissingTagWarn   = "warn"
	OnMissingTagError  = "error"
	OnMissingTagIgnore = "ignore"
)

// MaxPathLength bounds path-like fields.
const MaxPathLength = 4096

// Config holds all configuration for an inlining run.
type Config struct {
	Dist   DistConfig   `yaml:"dist"`
	Inline InlineConfig `yaml:"inline"`
}

// DistConfig describes the bundler's output layout.
type DistConfig struct {
	Dir       string `yaml:"dir"`       // Build output directory (default: frontend/dist)
	HTML      string `yaml:"html"`      // Entry HTML, relative to Dir (default: index.html)
	AssetsDir string `yaml:"assetsDir"` // Assets directory, relative to Dir (default: assets)
}

// InlineConfig defines substitution behavior.
type InlineConfig struct {
	OnMissingTag string `yaml:"onMissingTag"` // "warn", "error", "ignore" (default: warn)
}

// DefaultConfig returns a configuration with every field empty.
// Empty fields are filled by WithDefaults after all override layers are applied.
func DefaultConfig() *Config {
	return &Config{}
}

// WithDefaults fills empty fields with their defaults and returns c.
func (c *Config) WithDefaults() *Config {
	if c.Dist.Dir == "" {
		c.Dist.Dir = DefaultDistDir
	}
	if c.Dist.HTML == "" {
		c.Dist.HTML = DefaultHTML
	}
	if c.Dist.AssetsDir == "" {
		c.Dist.AssetsDir = DefaultAssetsDir
	}
	if c.Inline.OnMissingTag == "" {
		c.Inline.OnMissingTag = DefaultOnMissingTag
	}
	return c
}

// Validate checks field values. Empty fields are valid (defaults apply).
func (c *Config) Validate() error {
	if err := validateFieldLength("dist.dir", c.Dist.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("dist.html", c.Dist.HTML, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("dist.assetsDir", c.Dist.AssetsDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateRelative("dist.html", c.Dist.HTML); err != nil {
		return err
	}
	if err := validateRelative("dist.assetsDir", c.Dist.AssetsDir); err != nil {
		return err
	}

	if c.Inline.OnMissingTag != "" {
		switch strings.ToLower(c.Inline.OnMissingTag) {
		case OnMissingTagWarn, OnMissingTagError, OnMissingTagIgnore:
			// valid
		default:
			return fmt.Errorf("%w: %w: inline.onMissingTag %q (must be warn, error, or ignore)",
				ErrInvalidConfig, ErrInvalidPolicy, c.Inline.OnMissingTag)
		}
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := encode(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateRelative rejects absolute paths and paths escaping the dist directory.
func validateRelative(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if filepath.IsAbs(value) || strings.HasPrefix(value, "/") || strings.HasPrefix(value, "\\") {
		return fmt.Errorf("%w: %s must be relative to dist.dir, got %q", ErrInvalidConfig, fieldName, value)
	}
	clean := filepath.ToSlash(filepath.Clean(value))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s escapes dist.dir: %q", ErrInvalidConfig, fieldName, value)
	}
	if strings.ContainsRune(value, 0) {
		return fmt.Errorf("%w: %s contains a NUL byte", ErrInvalidConfig, fieldName)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory then
// the user config directory (~/.config/go-inlinebundle/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-inlinebundle", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
