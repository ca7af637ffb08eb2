package theme

import "errors"

// Errors returned by theme operations.
var (
	// ErrUnknownColor indicates a color name or hex value that cannot
	// be parsed.
	ErrUnknownColor = errors.New("unknown color")
)
