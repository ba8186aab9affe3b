// Package validator provides the rule engine behind checkout field
// validation: small composable Rule values for emails, card numbers,
// expiration dates and security codes, evaluated either exhaustively or in
// priority order.
//
// The package promotes declarative validation by letting you build Rule
// values that pair a boolean Check function with a typed error. Failures
// carry a Kind, the statically typed category of the problem, alongside the
// exact message a checkout UI renders, so callers branch on Kind and humans
// read Message.
//
// # Architecture
//
// Each source file groups a family of rules for one concern
// (string_rules.go, card_rules.go, expiry_rules.go, format_rules.go). Every
// exported validation function simply constructs and returns a Rule; there
// is no hidden global state, therefore the package is completely stateless
// and goroutine-safe. Rules that depend on the current moment take it as an
// argument instead of reading the wall clock.
//
// Core building blocks:
//   - Rule             – lightweight struct containing Check func and error
//   - ValidationError  – a single failure: Field, Kind, Message
//   - ValidationErrors – ordered slice type that implements the error interface
//   - Kind             – typed failure category for programmatic handling
//
// # Usage
//
// Apply evaluates every rule and aggregates all failures. ApplySequential
// stops at the first failure, which is how per-field checkout validation
// works: an empty card number reports "Required" alone, not every card rule
// at once.
//
//	err := validator.ApplySequential(
//	    validator.Required("card_number", number),
//	    validator.ValidCardChecksum("card_number", number),
//	    validator.AcceptedCardBrand("card_number", number),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    messages := verrs.Get("card_number")
//	    // render messages in order
//	}
//
// # Error Handling
//
// ValidationErrors implements Error, Is and works with errors.As, so
// errors.Is(err, validator.ErrValidationFailed) detects validation problems
// while the helper methods Has, Get, GetErrors and Fields preserve the
// field-level details.
package validator
