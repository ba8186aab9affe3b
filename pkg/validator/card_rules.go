package validator

import (
	"fmt"

	"github.com/dmitrymomot/checkoutkit/pkg/card"
)

// ValidCardChecksum validates a card number using the Luhn algorithm.
// Spaces and dashes are tolerated; anything else, a non-digit character or
// a length outside 13-19 digits, fails the same way a bad checksum does.
func ValidCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return card.ValidNumber(value)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindCardChecksum,
			Message: "Must be a valid card",
		},
	}
}

// AcceptedCardBrand validates that a card number belongs to a brand the
// checkout accepts. Runs after ValidCardChecksum, so a well-formed Amex
// number reports the brand problem rather than a checksum one.
func AcceptedCardBrand(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return card.ParseBrand(value).Accepted()
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindCardBrand,
			Message: "Must be Visa / Master card type",
		},
	}
}

// CVVLen validates that a security code is exactly length characters long.
func CVVLen(field, value string, length int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == length
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindLength,
			Message: fmt.Sprintf("Maximum %d digits", length),
		},
	}
}

// ValidCVC validates that a security code consists of digits only.
// Length is CVVLen's concern; this rule catches values like "12a".
func ValidCVC(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindCVC,
			Message: "Must be valid CVV",
		},
	}
}
