package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a value is a bare RFC 5322 address suitable for
// a checkout field. Display-name forms such as "John <john@example.com>"
// parse but are rejected: the field holds the address and nothing else.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return validEmailAddr(value)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindEmail,
			Message: "Must be a valid email",
		},
	}
}

func validEmailAddr(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// The parser accepts dotless domains and dot-edged labels that no mail
	// host resolves; checkout addresses must look deliverable.
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}

	return true
}
