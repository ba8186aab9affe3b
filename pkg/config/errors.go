package config

import "errors"

var (
	// ErrParsingConfig wraps env.Parse failures: a variable was missing,
	// malformed or not convertible to the field's type.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer reports a nil destination passed to Load or MustLoad.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
