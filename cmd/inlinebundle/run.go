package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command names.
const (
	cmdInline  = "inline"
	cmdCheck   = "check"
	cmdConfig  = "config"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// Sentinel errors for CLI usage.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrInvalidFlag    = errors.New("invalid flag")
)

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	switch s {
	case cmdInline, cmdCheck, cmdConfig, cmdVersion, cmdHelp:
		return true
	}
	return false
}

// runMain dispatches args (including the program name) and returns the exit code.
// A missing command, or a first argument that is a flag, runs inline.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := cmdInline
	if len(rest) > 0 {
		switch {
		case isCommand(rest[0]):
			cmd, rest = rest[0], rest[1:]
		case !strings.HasPrefix(rest[0], "-"):
			return reportError(env, fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0]))
		}
	}

	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "inlinebundle %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, env)
	}

	flags, positional, err := parseInlineFlags(cmd, rest)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInlineUsage(env.Stdout, cmd)
			return ExitSuccess
		}
		return reportError(env, fmt.Errorf("%w: %v", ErrInvalidFlag, err))
	}

	switch cmd {
	case cmdConfig:
		err = runConfig(positional, flags, env)
	case cmdCheck:
		err = runInline(ctx, positional, flags, env, false)
	default:
		err = runInline(ctx, positional, flags, env, true)
	}
	if err != nil {
		return reportError(env, err)
	}
	return ExitSuccess
}

// reportError prints err with its hint to stderr and returns its exit code.
func reportError(env *Environment, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	if errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrInvalidFlag) {
		fmt.Fprintln(env.Stderr)
		printUsage(env.Stderr)
	}
	return exitCodeFor(err)
}
