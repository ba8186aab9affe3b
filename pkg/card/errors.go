package card

import "errors"

var (
	// ErrNotDigits is returned when a value that must be purely numeric contains other characters.
	ErrNotDigits = errors.New("value must contain digits only")

	// ErrInvalidPrefix is returned by Generate when the prefix is empty or not numeric.
	ErrInvalidPrefix = errors.New("prefix must be one or more digits")

	// ErrInvalidLength is returned by Generate when the requested length falls outside 13..19.
	ErrInvalidLength = errors.New("card number length must be between 13 and 19 digits")

	// ErrPrefixTooLong is returned by Generate when the prefix leaves no room for the check digit.
	ErrPrefixTooLong = errors.New("prefix too long for requested length")
)
