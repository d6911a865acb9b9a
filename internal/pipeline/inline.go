package pipeline

import (
	"path"
	"regexp"
	"strings"
)

// DefaultAssetsDir is the directory bundlers such as Vite emit assets into,
// relative to the entry HTML.
const DefaultAssetsDir = "assets"

// Inliner defines the contract for inlining bundle assets into HTML.
// Each method replaces the first matching tag only and reports whether a tag
// was found. A false result means the HTML is returned unchanged.
type Inliner interface {
	InlineStylesheet(htmlContent, css string) (string, bool)
	InlineModuleScript(htmlContent, js string) (string, bool)
}

// Rewriter inlines assets referenced through a relative assets directory.
//
// Matching is textual: a tag inside an HTML comment counts as a match when it
// comes first, so a commented-out <link> or <script> is replaced and the live
// tag after it is left in place. ExternalReferences tokenizes the result and
// reports that live tag.
type Rewriter struct {
	assetsDir    string
	stylesheet   *regexp.Regexp
	moduleScript *regexp.Regexp
}

// NewRewriter compiles the tag patterns for assetsDir.
// An empty assetsDir falls back to DefaultAssetsDir.
func NewRewriter(assetsDir string) *Rewriter {
	dir := NormalizeAssetsDir(assetsDir)
	quoted := regexp.QuoteMeta(dir)

	return &Rewriter{
		assetsDir: dir,
		// Trailing whitespace is consumed so the <style> block's own newline
		// takes the place of the line break after the <link>.
		stylesheet: regexp.MustCompile(
			`(?i)<link rel="stylesheet"[^>]*href="\./` + quoted + `/[^"]+"\s*/?>\s*`),
		moduleScript: regexp.MustCompile(
			`(?i)<script type="module"[^>]*src="\./` + quoted + `/[^"]+"></script>`),
	}
}

// AssetsDir returns the normalized assets directory the patterns match.
func (r *Rewriter) AssetsDir() string {
	return r.assetsDir
}

// InlineStylesheet replaces the first stylesheet <link> into the assets
// directory with a <style> block wrapping css, followed by a newline.
func (r *Rewriter) InlineStylesheet(htmlContent, css string) (string, bool) {
	return replaceFirst(r.stylesheet, htmlContent, "<style>\n"+css+"\n</style>\n")
}

// InlineModuleScript replaces the first module <script src> into the assets
// directory with an inline module script wrapping js.
func (r *Rewriter) InlineModuleScript(htmlContent, js string) (string, bool) {
	return replaceFirst(r.moduleScript, htmlContent, "<script type=\"module\">\n"+js+"\n</script>")
}

// replaceFirst substitutes the first match of re with a literal replacement.
// regexp's Replace* functions would expand $ sequences found in bundle code.
func replaceFirst(re *regexp.Regexp, s, replacement string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s) - (loc[1] - loc[0]) + len(replacement))
	b.WriteString(s[:loc[0]])
	b.WriteString(replacement)
	b.WriteString(s[loc[1]:])
	return b.String(), true
}

// NormalizeAssetsDir converts an assets directory to the slash-separated,
// relative form used in HTML references ("./assets/" -> "assets").
func NormalizeAssetsDir(dir string) string {
	dir = strings.ReplaceAll(dir, "\\", "/")
	dir = strings.TrimPrefix(dir, "./")
	dir = strings.Trim(dir, "/")
	if dir == "" {
		return DefaultAssetsDir
	}
	return path.Clean(dir)
}

// Compile-time interface check.
var _ Inliner = (*Rewriter)(nil)
