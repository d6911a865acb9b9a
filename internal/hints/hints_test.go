package hints

import (
	"strings"
	"testing"
)

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hint     string
		contains []string
	}{
		{"missing asset", ForMissingAsset(".css"), []string{"npm run build", ".css"}},
		{"missing dist", ForMissingDist(), []string{"dist.dir"}},
		{"missing html", ForMissingHTML(), []string{"--html"}},
		{"missing tag", ForMissingTag("static"), []string{"./static/", `"./"`, "--assets-dir"}},
		{"policy", ForOnMissingTag(), []string{"warn", "error", "ignore"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q lacks the standard prefix", tt.hint)
			}
			for _, want := range tt.contains {
				if !strings.Contains(tt.hint, want) {
					t.Errorf("hint %q should contain %q", tt.hint, want)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"inline.yaml", "/home/u/.config/go-inlinebundle/inline.yaml"})
		if !strings.Contains(hint, "--config") {
			t.Error("expected --config suggestion")
		}
		if !strings.Contains(hint, "create /home/u/.config/go-inlinebundle/inline.yaml") {
			t.Errorf("expected user config suggestion, got %q", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"inline.yaml"})
		if strings.Contains(hint, "create") {
			t.Errorf("unexpected create suggestion: %q", hint)
		}
	})
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
