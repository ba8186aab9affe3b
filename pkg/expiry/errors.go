package expiry

import "errors"

var (
	// ErrInvalidFormat indicates the input did not reduce to four digits.
	ErrInvalidFormat = errors.New("expiration must be MM/YY or MMYY")

	// ErrInvalidMonth indicates a month outside 01-12.
	ErrInvalidMonth = errors.New("expiration month must be between 01 and 12")
)
