package validator

import "strings"

// Required validates that a string is not empty after trimming whitespace.
// Every checkout field starts from this rule: an untouched field and a
// cleared field fail it the same way.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindRequired,
			Message: "Required",
		},
	}
}
