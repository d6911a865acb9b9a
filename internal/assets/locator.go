package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Locator finds asset files by extension in a single directory.
type Locator struct {
	dir     string // as given by the caller, used in returned paths
	realDir string // absolute, symlinks resolved, used for containment checks
}

// NewLocator creates a Locator for dir.
// Returns ErrInvalidAssetsDir if dir is not an existing, readable directory.
func NewLocator(dir string) (*Locator, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidAssetsDir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetsDir, err)
	}
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidAssetsDir, dir)
	}

	return &Locator{dir: dir, realDir: absDir}, nil
}

// Dir returns the directory the locator scans, as passed to NewLocator.
func (l *Locator) Dir() string {
	return l.dir
}

// Locate returns the path of the first file, in lexicographic filename order,
// whose name ends with ext. The path is dir-qualified (filepath.Join(dir, name)).
// Returns a *MissingAssetError when nothing matches.
func (l *Locator) Locate(ext string) (string, error) {
	matches, err := l.Candidates(ext)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", &MissingAssetError{Ext: ext, Dir: l.dir}
	}
	return matches[0], nil
}

// Candidates returns every file whose name ends with ext, in selection order.
// An empty result is not an error.
func (l *Locator) Candidates(ext string) ([]string, error) {
	if err := ValidateExtension(ext); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.realDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetsDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		if !l.isRegularFile(entry) {
			continue
		}
		names = append(names, entry.Name())
	}

	// os.ReadDir already sorts, but selection must not depend on that.
	slices.Sort(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(l.dir, name)
	}
	return paths, nil
}

// isRegularFile reports whether entry is a regular file, following symlinks
// that stay inside the assets directory.
func (l *Locator) isRegularFile(entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	target, err := filepath.EvalSymlinks(filepath.Join(l.realDir, entry.Name()))
	if err != nil {
		return false
	}
	if err := l.verifyPathContainment(target); err != nil {
		return false
	}

	info, err := os.Stat(target)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// verifyPathContainment ensures a resolved path stays within the assets directory.
func (l *Locator) verifyPathContainment(path string) error {
	// Separator suffix prevents /base/assets matching /base/assets-evil.
	if !strings.HasPrefix(path, l.realDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, path, l.realDir)
	}
	return nil
}
