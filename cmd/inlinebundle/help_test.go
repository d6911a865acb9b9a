package main

// Notes:
// - printUsage/printInlineUsage: we test that required content strings are
//   present. Exact formatting is an implementation detail.
// - runHelp: we test routing to the correct help topic and its exit code.

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, s := range []string{"Usage: inlinebundle", "Commands:", "inline", "check", "config", "version", "help", "frontend/dist"} {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

func TestPrintInlineUsage(t *testing.T) {
	t.Parallel()

	for _, name := range []string{cmdInline, cmdCheck, cmdConfig} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printInlineUsage(&buf, name)
			output := buf.String()

			required := []string{
				"Usage: inlinebundle " + name,
				"--html", "--assets-dir", "--on-missing-tag", "--strict",
				"--config", "--quiet", "--verbose",
				"INLINEBUNDLE_DIST_DIR",
			}
			for _, s := range required {
				if !strings.Contains(output, s) {
					t.Errorf("printInlineUsage(%q) output should contain %q", name, s)
				}
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{nil, ExitSuccess, "Commands:", ""},
		{[]string{"inline"}, ExitSuccess, "Usage: inlinebundle inline", ""},
		{[]string{"check"}, ExitSuccess, "Usage: inlinebundle check", ""},
		{[]string{"config"}, ExitSuccess, "Usage: inlinebundle config", ""},
		{[]string{"version"}, ExitSuccess, "Usage: inlinebundle version", ""},
		{[]string{"help"}, ExitSuccess, "Usage: inlinebundle help", ""},
		{[]string{"bogus"}, ExitUsage, "", "Unknown command: bogus"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout should contain %q, got %q", tt.wantStdout, stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr.String())
			}
		})
	}
}
