package assets

import (
	"errors"
	"testing"
)

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		wantErr bool
	}{
		{"js", ".js", false},
		{"css", ".css", false},
		{"compound", ".min.js", false},
		{"empty", "", true},
		{"dot only", ".", true},
		{"missing dot", "css", true},
		{"forward slash", "./css", true},
		{"backslash", ".\\css", true},
		{"null byte", ".js\x00", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.ext)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExtension) {
					t.Errorf("ValidateExtension(%q) error = %v, want ErrInvalidExtension", tt.ext, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateExtension(%q) unexpected error: %v", tt.ext, err)
			}
		})
	}
}
