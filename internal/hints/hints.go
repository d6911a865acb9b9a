// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForMissingAsset returns a hint for an assets directory without a file of ext.
func ForMissingAsset(ext string) string {
	return format(fmt.Sprintf("run the bundler first (e.g. npm run build) so it emits a %s file", ext))
}

// ForMissingDist returns a hint for a build output or assets directory that does not exist.
func ForMissingDist() string {
	return format("pass the bundler output directory as an argument or set dist.dir in the config")
}

// ForMissingHTML returns a hint for a missing entry HTML file.
func ForMissingHTML() string {
	return format("use --html if the entry file is not index.html")
}

// ForMissingTag returns a hint for an entry HTML without the expected
// stylesheet link or module script.
func ForMissingTag(assetsDir string) string {
	return format(fmt.Sprintf(
		"assets must be referenced as ./%s/...; set the bundler's base to \"./\" or use --assets-dir",
		assetsDir))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-inlinebundle/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-inlinebundle") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOnMissingTag returns a hint listing the accepted missing-tag policies.
func ForOnMissingTag() string {
	return format("valid policies: warn, error, ignore")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
