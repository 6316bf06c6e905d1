package requestconf

import (
	"fmt"
)

// Error types that may be returned when loading configuration documents.
// Constructing a config through the Builder never fails.

// ParseError indicates a configuration document could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing request config: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError indicates a document field whose value cannot be interpreted.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
}
