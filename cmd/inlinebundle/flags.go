package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// layoutFlags describe the bundler output layout.
type layoutFlags struct {
	html      string
	assetsDir string
}

// inlineFlags holds all flags for the inline and check commands.
type inlineFlags struct {
	common       commonFlags
	layout       layoutFlags
	onMissingTag string
	strict       bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show selected assets and timing")
}

// addLayoutFlags adds build layout flags to a FlagSet.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.html, "html", "", "entry HTML file, relative to the build directory")
	fs.StringVar(&f.assetsDir, "assets-dir", "", "assets directory, relative to the build directory")
}

// parseInlineFlags parses inline/check command flags and returns positional args.
// Parse errors and flag.ErrHelp are returned, not printed.
func parseInlineFlags(name string, args []string) (*inlineFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &inlineFlags{}

	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	fs.StringVar(&f.onMissingTag, "on-missing-tag", "", "missing tag policy: warn, error, ignore")
	fs.BoolVar(&f.strict, "strict", false, "fail when a tag is missing (--on-missing-tag=error)")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
