package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config file size to prevent memory exhaustion.
var MaxInputSize = 64 << 10

var (
	errEmptyInput    = errors.New("empty config data")
	errInputTooLarge = errors.New("config data exceeds maximum size")
)

// decodeStrict unmarshals YAML into v, rejecting unknown fields.
// Callers never see goccy/go-yaml types, so the library can be swapped here.
func decodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return errEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", errInputTooLarge, len(data), MaxInputSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return err
	}
	return nil
}

// encode marshals v to YAML.
func encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
