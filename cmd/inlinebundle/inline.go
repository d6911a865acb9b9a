package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/alnah/go-inlinebundle"
	"github.com/alnah/go-inlinebundle/internal/config"
	"github.com/alnah/go-inlinebundle/internal/fileutil"
	"github.com/alnah/go-inlinebundle/internal/hints"
)

// runInline resolves configuration and runs the inliner on the build output
// directory. With write false it reports the outcome without touching files.
func runInline(ctx context.Context, positional []string, flags *inlineFlags, env *Environment, write bool) error {
	cfg, err := resolveConfig(positional, flags, env)
	if err != nil {
		return err
	}

	inl, err := inlinebundle.NewInliner(
		inlinebundle.WithHTML(cfg.Dist.HTML),
		inlinebundle.WithAssetsDir(cfg.Dist.AssetsDir),
		inlinebundle.WithMissingTagPolicy(inlinebundle.MissingTagPolicy(cfg.Inline.OnMissingTag)),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	var res *inlinebundle.Result
	if write {
		res, err = inl.Inline(ctx, cfg.Dist.Dir)
	} else {
		res, err = inl.Check(ctx, cfg.Dist.Dir)
	}

	// Warnings are printed even on error: under --strict the result explains
	// which tag was missing alongside the candidate assets.
	if res != nil {
		printWarnings(env, res)
	}
	if err != nil {
		return err
	}

	printResult(env, res, flags.common, write, env.Now().Sub(start))
	return nil
}

// runConfig prints the resolved configuration as YAML.
func runConfig(positional []string, flags *inlineFlags, env *Environment) error {
	cfg, err := resolveConfig(positional, flags, env)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, _ = env.Stdout.Write(data)
	return nil
}

// resolveConfig layers defaults, config file, environment and flags.
// Priority: CLI flags > env vars > config file > defaults.
func resolveConfig(positional []string, flags *inlineFlags, env *Environment) (*config.Config, error) {
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: expected at most one build directory, got %d", ErrTooManyArgs, len(positional))
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(positional, flags, cfg)

	// Env and flag values bypass LoadConfig, so validate the merged result.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// mergeFlags applies explicitly set CLI values to cfg.
func mergeFlags(positional []string, flags *inlineFlags, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Dist.Dir = positional[0]
	}
	if flags.layout.html != "" {
		cfg.Dist.HTML = flags.layout.html
	}
	if flags.layout.assetsDir != "" {
		cfg.Dist.AssetsDir = flags.layout.assetsDir
	}
	if flags.onMissingTag != "" {
		cfg.Inline.OnMissingTag = flags.onMissingTag
	}
	if flags.strict {
		cfg.Inline.OnMissingTag = config.OnMissingTagError
	}
}

// printWarnings writes each result warning to stderr.
func printWarnings(env *Environment, res *inlinebundle.Result) {
	for _, w := range res.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", w)
	}
}

// printResult writes the completion notice and, when verbose, the details.
func printResult(env *Environment, res *inlinebundle.Result, common commonFlags, write bool, elapsed time.Duration) {
	if common.verbose {
		fmt.Fprintf(env.Stderr, "js:  %s (%s)\n", res.JSPath, res.Script)
		fmt.Fprintf(env.Stderr, "css: %s (%s)\n", res.CSSPath, res.Style)
		fmt.Fprintf(env.Stderr, "done in %v\n", elapsed.Round(time.Millisecond))
	}

	if common.quiet {
		return
	}

	switch {
	case !write && res.Changed:
		fmt.Fprintf(env.Stdout, "Would inline JS and CSS into %s\n", res.HTMLPath)
	case !write:
		fmt.Fprintf(env.Stdout, "Nothing to inline in %s\n", res.HTMLPath)
	case res.Written:
		fmt.Fprintf(env.Stdout, "Inlined JS and CSS into %s\n", res.HTMLPath)
	default:
		fmt.Fprintf(env.Stdout, "%s already inlined, left unchanged\n", res.HTMLPath)
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var missingAsset *inlinebundle.MissingAssetError
	if errors.As(err, &missingAsset) {
		return hints.ForMissingAsset(missingAsset.Ext)
	}

	var tagErr *inlinebundle.TagNotFoundError
	if errors.As(err, &tagErr) {
		return hints.ForMissingTag(tagErr.AssetsDir)
	}

	var ioErr *inlinebundle.IOError
	if errors.As(err, &ioErr) && errors.Is(err, fs.ErrNotExist) {
		if ioErr.Op == "read" && fileutil.DirExists(filepath.Dir(ioErr.Path)) {
			return hints.ForMissingHTML()
		}
		return hints.ForMissingDist()
	}

	if errors.Is(err, config.ErrConfigNotFound) {
		return hints.ForConfigNotFound(config.SearchPaths("inlinebundle"))
	}

	if errors.Is(err, inlinebundle.ErrInvalidPolicy) || errors.Is(err, config.ErrInvalidPolicy) {
		return hints.ForOnMissingTag()
	}

	return ""
}
