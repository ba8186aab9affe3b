package checkoutkit

import (
	"time"

	"github.com/dmitrymomot/checkoutkit/pkg/validator"
)

// Result is the outcome of validating a complete set of checkout values.
// It always covers all four fields: a field absent from the underlying
// errors passed every rule.
type Result struct {
	errors validator.ValidationErrors
}

// Field returns the ordered error messages for a field. Empty means valid.
// Messages appear in rule-priority order, so the first entry is the one a
// UI renders next to the field.
func (r Result) Field(f Field) []string {
	return r.errors.Get(string(f))
}

// FieldErrors returns the typed failures for a field, for callers that
// branch on validator.Kind instead of rendering messages.
func (r Result) FieldErrors(f Field) []validator.ValidationError {
	return r.errors.GetErrors(string(f))
}

// AnyInvalid reports whether any field failed validation. It is derived
// from the error set on demand and is the flag that gates submission.
func (r Result) AnyInvalid() bool {
	return !r.errors.IsEmpty()
}

// Errors exposes the full ordered error collection.
func (r Result) Errors() validator.ValidationErrors {
	return r.errors
}

// ValidateEmail checks the email field: it must be present and a
// syntactically valid address. Rules run in priority order and the first
// failure wins.
func ValidateEmail(value string) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.ApplySequential(
		validator.Required(string(FieldEmail), value),
		validator.ValidEmail(string(FieldEmail), value),
	))
}

// ValidateCardNumber checks the card number field: present, Luhn-valid and
// of an accepted brand, in that order. A well-formed Amex number therefore
// reports only the brand problem.
func ValidateCardNumber(value string) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.ApplySequential(
		validator.Required(string(FieldCardNumber), value),
		validator.ValidCardChecksum(string(FieldCardNumber), value),
		validator.AcceptedCardBrand(string(FieldCardNumber), value),
	))
}

// ValidateCardExpiry checks the expiry field: present, parseable as MM/YY
// and not elapsed at now. The card stays valid through the last instant of
// its expiration month.
func ValidateCardExpiry(value string, now time.Time) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.ApplySequential(
		validator.Required(string(FieldCardExpire), value),
		validator.ValidCardExpiry(string(FieldCardExpire), value, now),
	))
}

// ValidateCVV checks the security code field: present, exactly three
// characters, all digits. "012" is a valid code; leading zeros carry
// meaning, which is why the value is a string end to end.
func ValidateCVV(value string) validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.ApplySequential(
		validator.Required(string(FieldCVV), value),
		validator.CVVLen(string(FieldCVV), value, 3),
		validator.ValidCVC(string(FieldCVV), value),
	))
}

// Validate re-validates every checkout field against the given moment and
// returns the combined result. All fields are always checked; there is no
// dirty tracking, so the result never lags behind the values.
func Validate(values Values, now time.Time) Result {
	var errs validator.ValidationErrors
	errs = append(errs, ValidateEmail(values.Email)...)
	errs = append(errs, ValidateCardNumber(values.CardNumber)...)
	errs = append(errs, ValidateCardExpiry(values.CardExpire, now)...)
	errs = append(errs, ValidateCVV(values.CVV)...)

	return Result{errors: errs}
}
