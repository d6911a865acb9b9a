package main

import (
	"context"
	"errors"

	"github.com/alnah/go-inlinebundle"
	"github.com/alnah/go-inlinebundle/internal/config"
)

// Exit codes for the inlinebundle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess      = 0   // Assets inlined, or nothing to do
	ExitGeneral      = 1   // General/unexpected error
	ExitUsage        = 2   // Invalid flags, config, or option values
	ExitIO           = 3   // File not found, permission denied
	ExitMissingAsset = 4   // No .js or .css file in the assets directory
	ExitMissingTag   = 5   // Expected tag absent under --on-missing-tag=error
	ExitInterrupted  = 130 // Canceled by SIGINT/SIGTERM before the write
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Missing asset is checked before I/O: both abort before any write,
	// but the asset case has its own remedy (run the bundler).
	if errors.Is(err, inlinebundle.ErrMissingAsset) {
		return ExitMissingAsset
	}

	if errors.Is(err, inlinebundle.ErrTagNotFound) {
		return ExitMissingTag
	}

	if errors.Is(err, inlinebundle.ErrIO) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, inlinebundle.ErrInvalidOption) ||
		errors.Is(err, inlinebundle.ErrInvalidExtension) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidFlag) {
		return ExitUsage
	}

	return ExitGeneral
}
