package inlinebundle

import (
	"errors"
	"testing"
)

func TestParseMissingTagPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    MissingTagPolicy
		wantErr bool
	}{
		{"", MissingTagWarn, false},
		{"warn", MissingTagWarn, false},
		{"Error", MissingTagError, false},
		{" ignore ", MissingTagIgnore, false},
		{"fail", "", true},
		{"warning", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMissingTagPolicy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) || !errors.Is(err, ErrInvalidPolicy) {
					t.Errorf("ParseMissingTagPolicy(%q) error = %v, want ErrInvalidOption and ErrInvalidPolicy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMissingTagPolicy(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMissingTagPolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagStatus_String(t *testing.T) {
	t.Parallel()

	tests := map[TagStatus]string{
		TagNotFound:       "not found",
		TagInlined:        "inlined",
		TagAlreadyInlined: "already inlined",
	}
	for status, want := range tests {
		if got := status.String(); got != want {
			t.Errorf("TagStatus(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}
