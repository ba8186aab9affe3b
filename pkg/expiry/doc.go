// Package expiry models payment card expiration dates as a month and year.
//
// Cards remain valid through the entire expiration month printed on the
// face, so the cutoff is the last nanosecond of that month rather than its
// first day. Parse accepts the forms users type into checkout fields
// ("12/29", "12 / 29", "1229") and rejects anything that does not reduce to
// exactly four digits.
//
// All functions are pure and safe for concurrent use.
package expiry
