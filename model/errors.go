package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrNotANumber       = errors.New("not a base-10 integer")
	ErrNegative         = errors.New("must not be negative")
	ErrDegenerateWidth  = errors.New("width too small to wrap text")
	ErrNoParagraphs     = errors.New("at least one paragraph is required")
	ErrUnsupportedValue = errors.New("unsupported value type")
)

// ConfigError reports a bad configuration value. Box names the offending
// box ("menu.tools", "info.motd") or section ("style"), Field the key.
type ConfigError struct {
	Box   string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Box, e.Err)
	}

	return fmt.Sprintf("%s: field %q: %v", e.Box, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfigError(box, field string, err error) *ConfigError {
	return &ConfigError{Box: box, Field: field, Err: err}
}
