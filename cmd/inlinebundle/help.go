package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: inlinebundle [command] [flags] [dist-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inline     Inline JS and CSS assets into the entry HTML (default)")
	fmt.Fprintln(w, "  check      Report what inline would do without writing")
	fmt.Fprintln(w, "  config     Print the resolved configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, inline runs on ./frontend/dist.")
	fmt.Fprintln(w, "Run 'inlinebundle help <command>' for details on a specific command.")
}

// printInlineUsage prints usage for the inline, check and config commands,
// which share one flag set.
func printInlineUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: inlinebundle %s [flags] [dist-dir]\n", name)
	fmt.Fprintln(w)
	switch name {
	case "check":
		fmt.Fprintln(w, "Locate assets and tags and report the outcome. Never writes.")
	case "config":
		fmt.Fprintln(w, "Print the configuration after applying file, environment and flags.")
	default:
		fmt.Fprintln(w, "Replace the stylesheet <link> and module <script src> in the entry HTML")
		fmt.Fprintln(w, "with the first .css and .js file (lexicographic order) of the assets")
		fmt.Fprintln(w, "directory, then write the HTML back in place.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dist-dir    Build output directory (default: frontend/dist)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --html <name>           Entry HTML file (default: index.html)")
	fmt.Fprintln(w, "      --assets-dir <name>     Assets directory (default: assets)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Missing tags:")
	fmt.Fprintln(w, "      --on-missing-tag <s>    Policy: warn, error, ignore (default: warn)")
	fmt.Fprintln(w, "      --strict                Same as --on-missing-tag=error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose               Show selected assets and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  INLINEBUNDLE_CONFIG, INLINEBUNDLE_DIST_DIR, INLINEBUNDLE_HTML,")
	fmt.Fprintln(w, "  INLINEBUNDLE_ASSETS_DIR, INLINEBUNDLE_ON_MISSING_TAG")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdInline, cmdCheck, cmdConfig:
		printInlineUsage(env.Stdout, args[0])
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: inlinebundle version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: inlinebundle help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
