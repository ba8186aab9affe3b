package validator

import (
	"time"

	"github.com/dmitrymomot/checkoutkit/pkg/expiry"
)

// ValidCardExpiry validates that a value parses as a card expiration and
// that the card is still usable at now. One rule covers both problems
// because the UI shows a single message for either: a date that cannot be
// read and a date that has passed are equally unusable.
//
// The current moment is a parameter rather than time.Now so validation
// stays pure and tests can pin the clock.
func ValidCardExpiry(field, value string, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			d, err := expiry.Parse(value)
			if err != nil {
				return false
			}
			return !d.ExpiredAt(now)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindCardExpiry,
			Message: "Must be valid expiration date",
		},
	}
}
