package validator

import (
	"errors"
	"slices"
	"strings"
)

// Kind is the statically typed category of a validation failure. Callers
// that need to branch on what went wrong match on Kind instead of parsing
// the human-readable Message.
type Kind string

const (
	KindRequired     Kind = "required"
	KindEmail        Kind = "email"
	KindCardChecksum Kind = "card_checksum"
	KindCardBrand    Kind = "card_brand"
	KindCardExpiry   Kind = "card_expiry"
	KindLength       Kind = "length"
	KindCVC          Kind = "cvc"
)

// ValidationError represents a single validation failure on a named field.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
}

// ValidationErrors represents an ordered collection of validation errors.
// Order is significant: for a single field it reflects rule priority, with
// the first entry being the one a UI would surface.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, err := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Is lets errors.Is(err, ErrValidationFailed) detect any validation failure
// without inspecting fields.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(err ValidationError) bool {
		return err.Field == field
	})
}

// Get returns the ordered messages recorded for a field. An empty slice
// means the field passed every rule.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve.GetErrors(field) {
		messages = append(messages, err.Message)
	}
	return messages
}

// GetErrors returns the typed failures recorded for a field, in rule
// priority order.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var failures []ValidationError
	for _, err := range ve {
		if err.Field == field {
			failures = append(failures, err)
		}
	}
	return failures
}

// Fields lists every failing field once, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, err := range ve {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		fields = append(fields, err.Field)
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes every rule and aggregates all failures.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed.Add(rule.Error)
		}
	}

	if failed.IsEmpty() {
		return nil
	}
	return failed
}

// ApplySequential executes rules in order and stops at the first failure,
// so a field reports only its highest-priority problem. A field that is
// empty fails Required without also failing every format rule behind it.
func ApplySequential(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
}

// ExtractValidationErrors returns the ValidationErrors carried by err, or
// nil when err is nil or not a validation failure.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var failures ValidationErrors
	if errors.As(err, &failures) {
		return failures
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
