// Package sanitizer provides the input formatters, normalizers and maskers a
// checkout form needs between raw keystrokes and stored field values.
//
// The functions fall into three groups:
//
//   - Formatters – rewrite raw input into its display form as the user types:
//     card numbers gain a space between each group of four digits and are
//     capped at the detected brand's maximum length, expiry dates gain the
//     "MM / YY" separator as soon as the month is complete.
//
//   - Normalizers – strip formatting back off for validation and storage
//     handoff: bare digits for card numbers, trimmed lowercase for emails.
//
//   - Maskers – produce log-safe representations of sensitive values. Card
//     numbers keep only their last four digits (PCI DSS), emails keep only
//     the first character of the local part.
//
// All formatters are pure and idempotent over their own output, so they can
// be re-applied on every keystroke without drift:
//
//	sanitizer.FormatCardNumber("4111111111111111") // "4111 1111 1111 1111"
//	sanitizer.FormatCardNumber("4111 1111 1111 1111") // unchanged
//	sanitizer.FormatCardExpiry("1229") // "12 / 29"
//
// The Formatter type and Chain allow field pipelines to be stored and reused:
//
//	maskForLog := sanitizer.Chain(sanitizer.NormalizeEmail, sanitizer.MaskEmail)
//
// # Error Handling
//
// None of the helpers returns an error. They always fall back to a safe
// result, usually the original input, if the value cannot be improved.
//
// The package holds no state and is safe for concurrent use.
package sanitizer
