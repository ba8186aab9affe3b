package validator

import "errors"

// ErrValidationFailed matches any ValidationErrors value under errors.Is,
// for callers that only care whether validation passed.
var ErrValidationFailed = errors.New("validation failed")
