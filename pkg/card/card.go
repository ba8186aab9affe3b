package card

import "strings"

// Brand identifies the payment network a card number belongs to.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandUnknown    Brand = "unknown"
)

// Accepted reports whether the brand is one the checkout accepts.
func (b Brand) Accepted() bool {
	return b == BrandVisa || b == BrandMastercard
}

// ParseBrand detects the brand from the number's leading digits.
// Visa numbers start with 4. Mastercard numbers start with 51-55 or with
// 2221-2720 (the range introduced in 2017). Anything else, including input
// that is empty or not a card number at all, is BrandUnknown.
//
// Detection works on partial input: a prefix rule only fires once enough
// digits exist to decide it, so live brand highlighting degrades gracefully
// while the user is still typing.
func ParseBrand(number string) Brand {
	digits := clean(number)
	if digits == "" || !isDigits(digits) {
		return BrandUnknown
	}

	if digits[0] == '4' {
		return BrandVisa
	}

	if len(digits) >= 2 {
		two := int(digits[0]-'0')*10 + int(digits[1]-'0')
		if two >= 51 && two <= 55 {
			return BrandMastercard
		}
	}

	if len(digits) >= 4 {
		four := 0
		for i := 0; i < 4; i++ {
			four = four*10 + int(digits[i]-'0')
		}
		if four >= 2221 && four <= 2720 {
			return BrandMastercard
		}
	}

	return BrandUnknown
}

// MaxDigits returns the longest number the brand issues. Visa and Mastercard
// cap at 16 digits; for unknown brands the ISO/IEC 7812 ceiling of 19 applies
// so that input is never truncated before the brand is decidable.
func MaxDigits(b Brand) int {
	switch b {
	case BrandVisa, BrandMastercard:
		return 16
	default:
		return 19
	}
}

// clean removes the separators commonly typed or pasted into card fields.
// Other characters are kept so that malformed input stays detectable.
func clean(number string) string {
	number = strings.TrimSpace(number)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, number)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
