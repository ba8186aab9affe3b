package sanitizer

// Formatter rewrites raw field input into its display or storage form.
// Formatters are pure: same input, same output, no side effects, no errors.
type Formatter func(string) string

// Chain composes formatters into one applied left to right. Useful when a
// field needs normalization before display formatting:
//
//	clean := sanitizer.Chain(sanitizer.NormalizeEmail, sanitizer.MaskEmail)
func Chain(formatters ...Formatter) Formatter {
	return func(s string) string {
		for _, f := range formatters {
			s = f(s)
		}
		return s
	}
}
