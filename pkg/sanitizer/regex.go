package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local-part normalization
	dotRegex = regexp.MustCompile(`\.+`)

	// Digit extraction for card numbers and expiry dates
	nonDigitRegex = regexp.MustCompile(`\D`)
)
