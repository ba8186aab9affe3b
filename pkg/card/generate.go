package card

import "crypto/rand"

// Generate returns a Luhn-valid card number of the given total length that
// starts with prefix. It exists for tests, demos and fixture data; the
// numbers it produces are well formed but belong to no real account.
//
// The prefix must be 1 or more digits and short enough to leave room for at
// least the check digit. Length is bounded by the 13..19 window ValidNumber
// enforces.
func Generate(prefix string, length int) (string, error) {
	if prefix == "" || !isDigits(prefix) {
		return "", ErrInvalidPrefix
	}
	if length < minNumberLen || length > maxNumberLen {
		return "", ErrInvalidLength
	}

	fill := length - 1 - len(prefix)
	if fill < 0 {
		return "", ErrPrefixTooLong
	}

	random, err := randomDigits(fill)
	if err != nil {
		return "", err
	}

	body := prefix + random
	return body + string(checkDigit(body)), nil
}

// randomDigits produces count unbiased decimal digits. Bytes of 250 and
// above are rejected so the modulo does not skew the distribution.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}

	const threshold = 250 // 256 - (256 % 10)

	out := make([]byte, 0, count)
	buf := make([]byte, 32)
	for len(out) < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && len(out) < count; i++ {
			if buf[i] < threshold {
				out = append(out, '0'+buf[i]%10)
			}
		}
	}
	return string(out), nil
}
