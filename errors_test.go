package inlinebundle

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

// ---------------------------------------------------------------------------
// TestIOError - Error message and matching
// ---------------------------------------------------------------------------

func TestIOError(t *testing.T) {
	t.Parallel()

	err := &IOError{Op: "write", Path: "dist/index.html", Err: fs.ErrPermission}

	if got, want := err.Error(), "write dist/index.html: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrIO) {
		t.Error("errors.Is(err, ErrIO) = false, want true")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}

	wrapped := fmt.Errorf("inlining: %w", err)
	var target *IOError
	if !errors.As(wrapped, &target) || target.Path != "dist/index.html" {
		t.Errorf("errors.As through wrap failed: %v", wrapped)
	}
}

// ---------------------------------------------------------------------------
// TestTagNotFoundError - Error message and matching
// ---------------------------------------------------------------------------

func TestTagNotFoundError(t *testing.T) {
	t.Parallel()

	err := &TagNotFoundError{Tag: "module <script>", HTMLPath: "dist/index.html", AssetsDir: "assets"}

	want := "no module <script> referencing ./assets/ found in dist/index.html"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrTagNotFound) {
		t.Error("errors.Is(err, ErrTagNotFound) = false, want true")
	}
	if errors.Is(err, ErrIO) {
		t.Error("errors.Is(err, ErrIO) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestMissingAssetError - Re-exported type
// ---------------------------------------------------------------------------

func TestMissingAssetError(t *testing.T) {
	t.Parallel()

	var err error = &MissingAssetError{Ext: ".css", Dir: "dist/assets"}

	if got, want := err.Error(), "no .css asset found in dist/assets"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMissingAsset) {
		t.Error("errors.Is(err, ErrMissingAsset) = false, want true")
	}
}
