package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/checkoutkit/pkg/card"
)

// NormalizeEmail lowercases and trims an address and collapses the dot runs
// typos produce in the local part. Values that do not look like an address
// pass through unchanged, preserving whatever the user typed for the
// validator to reject.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// MaskEmail hides the local part of an address, keeping the first character
// and the full domain so log readers can still recognize the account.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// NormalizeCardNumber strips formatting down to bare digits for validation
// and brand detection.
func NormalizeCardNumber(number string) string {
	return nonDigitRegex.ReplaceAllString(number, "")
}

// MaskCardNumber follows the PCI DSS requirement to show only the last 4
// digits. The only card-number form that may reach a log record.
func MaskCardNumber(number string) string {
	digits := NormalizeCardNumber(number)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// FormatCardNumber rewrites raw card-number keystrokes into the display form
// with a space between each group of four digits: "4111111111111111" becomes
// "4111 1111 1111 1111". Non-digits are dropped and the result is capped at
// the detected brand's maximum length, so pasting an overlong string cannot
// grow the field. Partial input formats as far as its digits allow, and the
// function is idempotent over its own output.
func FormatCardNumber(raw string) string {
	digits := NormalizeCardNumber(raw)
	if max := card.MaxDigits(card.ParseBrand(digits)); len(digits) > max {
		digits = digits[:max]
	}

	var formatted strings.Builder
	formatted.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			formatted.WriteByte(' ')
		}
		formatted.WriteByte(digits[i])
	}

	return formatted.String()
}

// FormatCardExpiry rewrites raw expiry keystrokes into the "MM / YY" display
// form. The separator appears as soon as the month is complete ("12" becomes
// "12 / "), zero or one digit passes through untouched, and digits beyond
// MMYY are dropped. Idempotent over its own output.
func FormatCardExpiry(raw string) string {
	digits := NormalizeCardNumber(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 2 {
		return digits
	}

	return digits[:2] + " / " + digits[2:]
}
