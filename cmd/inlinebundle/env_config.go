package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alnah/go-inlinebundle/internal/config"
)

// envPrefix namespaces the tool's environment variables.
const envPrefix = "INLINEBUNDLE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // INLINEBUNDLE_CONFIG: config file name or path
	DistDir      string // INLINEBUNDLE_DIST_DIR: build output directory
	HTML         string // INLINEBUNDLE_HTML: entry HTML file
	AssetsDir    string // INLINEBUNDLE_ASSETS_DIR: assets directory
	OnMissingTag string // INLINEBUNDLE_ON_MISSING_TAG: warn, error, ignore
}

// knownEnvVars lists valid INLINEBUNDLE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"INLINEBUNDLE_CONFIG":         true,
	"INLINEBUNDLE_DIST_DIR":       true,
	"INLINEBUNDLE_HTML":           true,
	"INLINEBUNDLE_ASSETS_DIR":     true,
	"INLINEBUNDLE_ON_MISSING_TAG": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:   os.Getenv("INLINEBUNDLE_CONFIG"),
		DistDir:      os.Getenv("INLINEBUNDLE_DIST_DIR"),
		HTML:         os.Getenv("INLINEBUNDLE_HTML"),
		AssetsDir:    os.Getenv("INLINEBUNDLE_ASSETS_DIR"),
		OnMissingTag: os.Getenv("INLINEBUNDLE_ON_MISSING_TAG"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized INLINEBUNDLE_* variable.
// Helps catch typos like INLINEBUNDLE_DISTDIR instead of INLINEBUNDLE_DIST_DIR.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Env values override the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DistDir != "" {
		cfg.Dist.Dir = env.DistDir
	}
	if env.HTML != "" {
		cfg.Dist.HTML = env.HTML
	}
	if env.AssetsDir != "" {
		cfg.Dist.AssetsDir = env.AssetsDir
	}
	if env.OnMissingTag != "" {
		cfg.Inline.OnMissingTag = env.OnMissingTag
	}
}
