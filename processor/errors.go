package processor

import "errors"

// Configuration errors reported at construction time. Rendering itself
// never fails.
var (
	// ErrEmptyBracketSet indicates a bracket matcher configured with
	// no bracket characters.
	ErrEmptyBracketSet = errors.New("bracket character set is empty")

	// ErrInvalidMaxDistance indicates a non-positive bracket scan
	// window.
	ErrInvalidMaxDistance = errors.New("max cursor distance must be positive")

	// ErrInvalidTabstop indicates a non-positive tab stop width.
	ErrInvalidTabstop = errors.New("tab stop width must be positive")
)
