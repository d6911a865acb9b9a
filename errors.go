package inlinebundle

import (
	"errors"
	"fmt"

	"github.com/alnah/go-inlinebundle/internal/assets"
)

// Sentinel errors for library operations.
var (
	// ErrIO matches any *IOError.
	ErrIO = errors.New("I/O error")

	// ErrMissingAsset matches any *MissingAssetError.
	ErrMissingAsset = assets.ErrMissingAsset

	// ErrTagNotFound matches any *TagNotFoundError.
	ErrTagNotFound = errors.New("external asset tag not found")

	// ErrInvalidExtension indicates a malformed asset extension.
	ErrInvalidExtension = assets.ErrInvalidExtension

	// ErrInvalidOption indicates an Inliner option with an unusable value.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidPolicy indicates an unknown missing-tag policy name.
	// It is always wrapped together with ErrInvalidOption.
	ErrInvalidPolicy = errors.New("invalid missing-tag policy")
)

// MissingAssetError reports that the assets directory has no file with the
// expected extension. It is returned before anything is written.
type MissingAssetError = assets.MissingAssetError

// IOError reports a failed filesystem operation on Path.
// errors.Is matches both ErrIO and the underlying error (e.g. fs.ErrNotExist).
type IOError struct {
	Op   string // "read", "scan", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// TagNotFoundError reports an entry HTML without the external tag a
// substitution expected. Returned only under MissingTagError.
type TagNotFoundError struct {
	Tag       string // Tag description, e.g. "stylesheet <link>"
	HTMLPath  string
	AssetsDir string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("no %s referencing ./%s/ found in %s", e.Tag, e.AssetsDir, e.HTMLPath)
}

// Unwrap lets callers match with errors.Is(err, ErrTagNotFound).
func (e *TagNotFoundError) Unwrap() error {
	return ErrTagNotFound
}
