package inlinebundle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-inlinebundle/internal/assets"
	"github.com/alnah/go-inlinebundle/internal/fileutil"
	"github.com/alnah/go-inlinebundle/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.Inliner = (*pipeline.Rewriter)(nil)

// filePermissions applies only when the entry HTML vanished between read and write.
const filePermissions = 0o644 // rw-r--r--

// inlinerConfig holds resolved Inliner settings.
type inlinerConfig struct {
	html         string
	assetsDir    string
	onMissingTag MissingTagPolicy
}

// Inliner rewrites a bundler's entry HTML so its stylesheet and module script
// are embedded inline. Create with NewInliner; an Inliner holds no per-run
// state and may be reused.
type Inliner struct {
	cfg      inlinerConfig
	rewriter pipeline.Inliner
}

// NewInliner creates an Inliner for the default Vite layout
// (index.html + assets/). Use options to customize.
// Returns ErrInvalidOption if an option value is unusable.
func NewInliner(opts ...Option) (*Inliner, error) {
	in := &Inliner{
		cfg: inlinerConfig{
			html:         DefaultHTML,
			assetsDir:    DefaultAssetsDir,
			onMissingTag: MissingTagWarn,
		},
	}

	for _, opt := range opts {
		opt(in)
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	in.cfg.assetsDir = pipeline.NormalizeAssetsDir(in.cfg.assetsDir)
	if in.rewriter == nil {
		in.rewriter = pipeline.NewRewriter(in.cfg.assetsDir)
	}

	return in, nil
}

// validate checks option values before the rewriter is built.
func (in *Inliner) validate() error {
	if strings.TrimSpace(in.cfg.html) == "" {
		return fmt.Errorf("%w: empty HTML file name", ErrInvalidOption)
	}
	if filepath.IsAbs(in.cfg.html) {
		return fmt.Errorf("%w: HTML file %q must be relative to the build directory", ErrInvalidOption, in.cfg.html)
	}
	policy, err := ParseMissingTagPolicy(string(in.cfg.onMissingTag))
	if err != nil {
		return err
	}
	in.cfg.onMissingTag = policy
	return nil
}

// Inline rewrites distDir's entry HTML in place, embedding the first .css
// asset as a <style> block and the first .js asset as an inline module script.
//
// Every read and every failure check happens before the single write, so on
// error the HTML file is left untouched. When nothing changes (for example on
// a second run) the file is not rewritten.
func (in *Inliner) Inline(ctx context.Context, distDir string) (*Result, error) {
	return in.run(ctx, distDir, true)
}

// Check performs the same steps as Inline without writing anything.
func (in *Inliner) Check(ctx context.Context, distDir string) (*Result, error) {
	return in.run(ctx, distDir, false)
}

func (in *Inliner) run(ctx context.Context, distDir string, write bool) (*Result, error) {
	res := &Result{HTMLPath: filepath.Join(distDir, filepath.FromSlash(in.cfg.html))}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlBytes, err := os.ReadFile(res.HTMLPath) // #nosec G304 -- path is the configured build output
	if err != nil {
		return nil, &IOError{Op: "read", Path: res.HTMLPath, Err: err}
	}

	// Locate assets (JS first, as the bundle's entry point)
	assetsPath := filepath.Join(distDir, filepath.FromSlash(in.cfg.assetsDir))
	locator, err := assets.NewLocator(assetsPath)
	if err != nil {
		return nil, &IOError{Op: "scan", Path: assetsPath, Err: err}
	}
	if res.JSPath, err = in.locate(locator, ExtJS, res); err != nil {
		return nil, err
	}
	if res.CSSPath, err = in.locate(locator, ExtCSS, res); err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	jsContent, err := os.ReadFile(res.JSPath) // #nosec G304 -- path selected inside the assets directory
	if err != nil {
		return nil, &IOError{Op: "read", Path: res.JSPath, Err: err}
	}
	cssContent, err := os.ReadFile(res.CSSPath) // #nosec G304 -- path selected inside the assets directory
	if err != nil {
		return nil, &IOError{Op: "read", Path: res.CSSPath, Err: err}
	}

	original := string(htmlBytes)
	css := string(cssContent)
	js := string(jsContent)

	output, styleOK := in.rewriter.InlineStylesheet(original, css)
	output, scriptOK := in.rewriter.InlineModuleScript(output, js)

	res.Style = tagStatus(styleOK, original, "<style>\n"+css+"\n</style>")
	res.Script = tagStatus(scriptOK, original, "<script type=\"module\">\n"+js+"\n</script>")

	if err := in.applyMissingTagPolicy(res); err != nil {
		return res, err
	}

	res.Changed = output != original

	refs, err := pipeline.ExternalReferences(output, in.cfg.assetsDir)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not scan rewritten HTML: %v", err))
	}
	res.Remaining = refs
	for _, ref := range refs {
		res.Warnings = append(res.Warnings, fmt.Sprintf("external reference remains: %s", ref))
	}

	if !write || !res.Changed {
		return res, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err := fileutil.WriteFileAtomic(res.HTMLPath, []byte(output), filePermissions); err != nil {
		return nil, &IOError{Op: "write", Path: res.HTMLPath, Err: err}
	}
	res.Written = true

	return res, nil
}

// locate selects the asset for ext and records a warning when several files
// could have been chosen.
func (in *Inliner) locate(locator *assets.Locator, ext string, res *Result) (string, error) {
	candidates, err := locator.Candidates(ext)
	if err != nil {
		if errors.Is(err, assets.ErrInvalidAssetsDir) {
			return "", &IOError{Op: "scan", Path: locator.Dir(), Err: err}
		}
		return "", err
	}
	if len(candidates) == 0 {
		return "", &MissingAssetError{Ext: ext, Dir: locator.Dir()}
	}
	if len(candidates) > 1 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"%d %s assets in %s; using %s", len(candidates), ext, locator.Dir(), filepath.Base(candidates[0])))
	}
	return candidates[0], nil
}

// applyMissingTagPolicy turns TagNotFound outcomes into warnings or errors.
func (in *Inliner) applyMissingTagPolicy(res *Result) error {
	var missing []error
	if res.Style == TagNotFound {
		missing = append(missing, &TagNotFoundError{
			Tag: "stylesheet <link>", HTMLPath: res.HTMLPath, AssetsDir: in.cfg.assetsDir,
		})
	}
	if res.Script == TagNotFound {
		missing = append(missing, &TagNotFoundError{
			Tag: "module <script>", HTMLPath: res.HTMLPath, AssetsDir: in.cfg.assetsDir,
		})
	}
	if len(missing) == 0 {
		return nil
	}

	switch in.cfg.onMissingTag {
	case MissingTagError:
		return errors.Join(missing...)
	case MissingTagIgnore:
		return nil
	default:
		for _, err := range missing {
			res.Warnings = append(res.Warnings, err.Error()+"; left unchanged")
		}
		return nil
	}
}

// tagStatus classifies a substitution. A miss counts as already inlined when
// the original document holds the exact block this run would have produced.
func tagStatus(matched bool, original, block string) TagStatus {
	if matched {
		return TagInlined
	}
	if strings.Contains(original, block) {
		return TagAlreadyInlined
	}
	return TagNotFound
}
