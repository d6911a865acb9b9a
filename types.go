package inlinebundle

import (
	"fmt"
	"strings"

	"github.com/alnah/go-inlinebundle/internal/pipeline"
)

// Defaults for the bundler output layout.
const (
	DefaultHTML      = "index.html"
	DefaultAssetsDir = pipeline.DefaultAssetsDir
)

// Asset extensions searched in the assets directory.
const (
	ExtJS  = ".js"
	ExtCSS = ".css"
)

// MissingTagPolicy decides what happens when a substitution finds no tag.
type MissingTagPolicy string

// Missing-tag policies.
const (
	// MissingTagWarn records a warning in Result.Warnings and continues.
	MissingTagWarn MissingTagPolicy = "warn"
	// MissingTagError aborts with a *TagNotFoundError before writing.
	MissingTagError MissingTagPolicy = "error"
	// MissingTagIgnore skips the substitution silently.
	MissingTagIgnore MissingTagPolicy = "ignore"
)

// ParseMissingTagPolicy parses a policy name, case-insensitively.
// An empty string yields MissingTagWarn.
func ParseMissingTagPolicy(s string) (MissingTagPolicy, error) {
	switch p := MissingTagPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return MissingTagWarn, nil
	case MissingTagWarn, MissingTagError, MissingTagIgnore:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %w %q", ErrInvalidOption, ErrInvalidPolicy, s)
	}
}

// TagStatus is the outcome of one substitution.
type TagStatus int

const (
	// TagNotFound means no external tag matched and the asset is not inline.
	TagNotFound TagStatus = iota
	// TagInlined means the external tag was replaced in this run.
	TagInlined
	// TagAlreadyInlined means no external tag matched but the document already
	// holds the asset's exact inline block (a previous run's output).
	TagAlreadyInlined
)

func (s TagStatus) String() string {
	switch s {
	case TagInlined:
		return "inlined"
	case TagAlreadyInlined:
		return "already inlined"
	default:
		return "not found"
	}
}

// Result describes an Inline or Check run.
type Result struct {
	HTMLPath string // Entry HTML that was (or would be) rewritten
	JSPath   string // Selected JavaScript asset
	CSSPath  string // Selected CSS asset

	Style  TagStatus // Stylesheet substitution outcome
	Script TagStatus // Module script substitution outcome

	Changed bool // Rewritten HTML differs from the original
	Written bool // Rewritten HTML was persisted (Inline only)

	// Remaining lists external references into the assets directory still
	// present in the rewritten HTML.
	Remaining []pipeline.Reference

	// Warnings holds non-fatal findings: missing tags under MissingTagWarn,
	// several candidate assets for one extension, leftover references.
	Warnings []string
}

// Option configures an Inliner.
type Option func(*Inliner)

// WithHTML sets the entry HTML file name, relative to the build output directory.
func WithHTML(name string) Option {
	return func(in *Inliner) {
		in.cfg.html = name
	}
}

// WithAssetsDir sets the assets directory, relative to the build output
// directory. It is also the prefix matched in ./<dir>/ references.
func WithAssetsDir(dir string) Option {
	return func(in *Inliner) {
		in.cfg.assetsDir = dir
	}
}

// WithMissingTagPolicy sets the behavior for substitutions that find no tag.
func WithMissingTagPolicy(p MissingTagPolicy) Option {
	return func(in *Inliner) {
		in.cfg.onMissingTag = p
	}
}
