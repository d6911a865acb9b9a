package assets

import (
	"errors"
	"fmt"
)

// Sentinel errors for asset operations.
var (
	// ErrMissingAsset indicates no file in the assets directory ends with the
	// requested extension.
	ErrMissingAsset = errors.New("asset not found")

	// ErrInvalidExtension indicates the extension is empty, lacks a leading dot,
	// or contains path separators.
	ErrInvalidExtension = errors.New("invalid asset extension")

	// ErrInvalidAssetsDir indicates the assets directory is missing, unreadable,
	// or not a directory.
	ErrInvalidAssetsDir = errors.New("invalid assets directory")

	// ErrPathTraversal indicates an entry resolves outside the assets directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

// MissingAssetError reports the extension that had no match and the directory
// that was scanned.
type MissingAssetError struct {
	Ext string
	Dir string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("no %s asset found in %s", e.Ext, e.Dir)
}

// Unwrap lets callers match with errors.Is(err, ErrMissingAsset).
func (e *MissingAssetError) Unwrap() error {
	return ErrMissingAsset
}
