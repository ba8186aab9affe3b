package card

// Card numbers are 13 to 19 digits across every major network; anything
// outside that window fails validation before the checksum is consulted.
const (
	minNumberLen = 13
	maxNumberLen = 19
)

// ValidNumber reports whether number is a well-formed card number: digits
// only once separators are stripped, 13 to 19 of them, passing the Luhn
// checksum. It says nothing about whether the card exists or is accepted;
// pair it with ParseBrand for the acceptance gate.
func ValidNumber(number string) bool {
	digits := clean(number)
	if digits == "" || !isDigits(digits) {
		return false
	}
	if len(digits) < minNumberLen || len(digits) > maxNumberLen {
		return false
	}
	return luhnSum(digits)%10 == 0
}

// CheckDigit computes the Luhn check digit for body, so that body plus the
// returned digit satisfies the checksum. Returns ErrNotDigits when body
// contains anything but digits.
func CheckDigit(body string) (byte, error) {
	if body == "" || !isDigits(body) {
		return 0, ErrNotDigits
	}
	return checkDigit(body), nil
}

func checkDigit(body string) byte {
	// The check digit position counts as position one, so doubling starts
	// immediately at the body's rightmost digit.
	sum, double := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

func luhnSum(digits string) int {
	sum, double := 0, false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}
