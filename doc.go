// Package checkoutkit implements the field validation, input formatting and
// submission gating of a payment checkout form, independent of any UI
// framework or transport.
//
// The package models a checkout as four fields (email, card number, expiry,
// CVV) whose values and validation result always move together: every edit
// runs one pure transition that formats the input, stores it and
// re-validates all fields synchronously. There is no dirty tracking and no
// deferred validation, so the result can never lag behind the values.
//
// Key properties:
//
//   - Validation is ordered and short-circuited per field: an empty card
//     number reports "Required", not every card rule at once
//   - Card numbers format as the user types ("4111111111111111" becomes
//     "4111 1111 1111 1111") and expiry dates gain the "MM / YY" separator
//     as soon as the month is complete
//   - Only Visa and Mastercard pass the brand gate; brands are detected
//     from leading digits and recomputed on demand
//   - Submission is gated, not re-validated: Submit consults the result of
//     the last edit and the loading flag, and hands the accepted values to
//     the onSuccess callback exactly once
//
// Basic Usage:
//
//	form, err := checkoutkit.New(func(v checkoutkit.Values) {
//		charge(v) // runs once per accepted submission
//	})
//	if err != nil {
//		return err
//	}
//
//	form.Edit(checkoutkit.FieldEmail, "jane@example.com")
//	form.Edit(checkoutkit.FieldCardNumber, "4111111111111111")
//	form.Edit(checkoutkit.FieldCardExpire, "1229")
//	result := form.Edit(checkoutkit.FieldCVV, "123")
//
//	if result.AnyInvalid() {
//		for _, field := range checkoutkit.Fields() {
//			renderErrors(field, result.Field(field))
//		}
//	} else if form.CanSubmit() {
//		_ = form.Submit()
//	}
//
// The pure core is available without a Form. ApplyEdit takes a state, a
// field and raw input and returns the next state; Validate checks a full
// set of values against a given moment. Both are trivially testable and
// free of side effects:
//
//	next := checkoutkit.ApplyEdit(state, checkoutkit.FieldCVV, "123", time.Now())
//
// Configuration:
//
// Defaults come from the environment via LoadConfig (CHECKOUT_SUBMIT_TEXT,
// CHECKOUT_TIME_LOCATION) and are applied with WithConfig. Tests pin the
// clock with WithClock.
//
// Error Handling:
//
// Field problems are values, not errors: they live in Result as ordered
// per-field message lists with typed kinds. The error returns of New and
// Submit are sentinels (ErrNilOnSuccess, ErrFormInvalid, ErrFormLoading)
// compared with errors.Is.
package checkoutkit
