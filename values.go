package checkoutkit

import "github.com/dmitrymomot/checkoutkit/pkg/card"

// Field identifies a checkout form field. Field values double as keys in
// validation results and log records.
type Field string

const (
	FieldEmail      Field = "email"
	FieldCardNumber Field = "card_number"
	FieldCardExpire Field = "card_expire"
	FieldCVV        Field = "cvv"
)

// Fields returns every checkout field in display order, which is also the
// order Validate reports them in.
func Fields() []Field {
	return []Field{FieldEmail, FieldCardNumber, FieldCardExpire, FieldCVV}
}

// Values holds the current contents of the checkout fields. The zero value
// is a pristine, untouched form; a freshly created form and a successfully
// submitted one are indistinguishable from it. Card number and expiry are
// stored in their display form, exactly as a UI would render them.
type Values struct {
	Email      string
	CardNumber string
	CardExpire string
	CVV        string
}

// Get returns the named field's current value. Unknown fields read as empty.
func (v Values) Get(f Field) string {
	switch f {
	case FieldEmail:
		return v.Email
	case FieldCardNumber:
		return v.CardNumber
	case FieldCardExpire:
		return v.CardExpire
	case FieldCVV:
		return v.CVV
	default:
		return ""
	}
}

// set returns a copy with the named field replaced. Unknown fields leave
// the copy unchanged, so a typo in a caller cannot corrupt state.
func (v Values) set(f Field, value string) Values {
	switch f {
	case FieldEmail:
		v.Email = value
	case FieldCardNumber:
		v.CardNumber = value
	case FieldCardExpire:
		v.CardExpire = value
	case FieldCVV:
		v.CVV = value
	}
	return v
}

// CardBrand detects the brand of the current card number. The brand is
// recomputed from the digits on every call, never stored, so it can not go
// stale while the user edits the number.
func (v Values) CardBrand() card.Brand {
	return card.ParseBrand(v.CardNumber)
}
