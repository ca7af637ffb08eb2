package config

import (
	"errors"
	"fmt"
)

// Errors reported while loading or building a configuration.
var (
	// ErrUnsupportedFormat indicates a config file extension with no
	// registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrUnknownStage indicates a pipeline stage type the builder
	// does not recognize.
	ErrUnknownStage = errors.New("unknown stage type")

	// ErrUnknownTheme indicates a theme name with no registered
	// theme.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidChar indicates a character field holding more than
	// one character.
	ErrInvalidChar = errors.New("char field must be a single character")

	// ErrMissingScript indicates a lua stage with neither a script
	// path nor inline source.
	ErrMissingScript = errors.New("lua stage needs a script or source")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
