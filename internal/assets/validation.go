package assets

import (
	"fmt"
	"strings"
)

// ValidateExtension checks that ext is usable as a filename suffix.
// It must start with a dot, have at least one character after it, and contain
// no path separators or NUL bytes.
func ValidateExtension(ext string) error {
	if ext == "" {
		return fmt.Errorf("%w: empty extension", ErrInvalidExtension)
	}
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("%w: %q must start with a dot", ErrInvalidExtension, ext)
	}
	if strings.ContainsAny(ext, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
	}
	return nil
}
