// Package card provides pure helpers for payment card numbers: brand
// detection from leading digits, Luhn checksum validation, per-brand length
// caps and a generator for well-formed test numbers.
//
// The package has no state and no dependencies beyond the standard library;
// every function is safe for concurrent use. All helpers tolerate the
// spacing and dashes users type into card fields, but reject input whose
// remaining characters are not digits rather than silently dropping them.
//
// Only Visa and Mastercard are modelled as accepted brands; everything else
// detects as BrandUnknown and fails the Brand.Accepted gate.
package card
