package checkoutkit

import (
	"time"

	"github.com/dmitrymomot/checkoutkit/pkg/sanitizer"
)

// State pairs field values with the result of validating them. The two are
// never out of sync because a State is only produced by NewState and
// ApplyEdit, both of which validate.
type State struct {
	Values Values
	Result Result
}

// fieldFormatters maps the fields whose raw input is rewritten into a
// display form before being stored. Email and CVV are stored verbatim.
var fieldFormatters = map[Field]sanitizer.Formatter{
	FieldCardNumber: sanitizer.FormatCardNumber,
	FieldCardExpire: sanitizer.FormatCardExpiry,
}

// NewState validates values as of now and returns the resulting state.
func NewState(values Values, now time.Time) State {
	return State{
		Values: values,
		Result: Validate(values, now),
	}
}

// ApplyEdit is the single state transition of a checkout form: format the
// raw input if the field has a formatter, store it, and re-validate every
// field. It is a pure function; the given state is left untouched and the
// same inputs always produce the same output.
func ApplyEdit(state State, field Field, raw string, now time.Time) State {
	if format, ok := fieldFormatters[field]; ok {
		raw = format(raw)
	}

	return NewState(state.Values.set(field, raw), now)
}
