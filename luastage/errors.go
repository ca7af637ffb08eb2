package luastage

import "errors"

// Errors returned when loading a scripted stage.
var (
	// ErrEmptyScript indicates an empty script source.
	ErrEmptyScript = errors.New("empty script")

	// ErrNoTransform indicates the script does not define a transform
	// function.
	ErrNoTransform = errors.New("script defines no transform function")

	// ErrBadResult indicates the transform returned something other
	// than a fragment list.
	ErrBadResult = errors.New("transform result is not a fragment list")
)
