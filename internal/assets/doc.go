// Package assets locates bundler output files inside a build's assets directory.
//
// # Selection
//
// A Locator scans a single directory (no recursion) and selects the first
// regular file whose name ends with a requested extension:
//
//	dist/
//	├── index.html
//	└── assets/
//	    ├── index-7f3a.css      # Locate(".css")
//	    └── index-7f3a.js       # Locate(".js")
//
// Entries are compared in lexicographic filename order, so the selection does
// not depend on the order the operating system returns directory entries.
// Subdirectories are ignored even when their name carries the extension.
//
// # Security
//
// Extensions are validated to reject path separators and NUL bytes.
// Symlinked entries are resolved and skipped when they point outside the
// assets directory.
package assets
