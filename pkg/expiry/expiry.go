package expiry

import (
	"fmt"
	"strings"
	"time"
)

// Date identifies the last month a payment card is usable. The zero value
// is not a valid expiration; obtain one through Parse.
type Date struct {
	Month time.Month
	Year  int
}

// Parse reads a card-face expiration in "MM/YY", "MM / YY" or "MMYY" form.
// Spaces and the separator are ignored, but exactly four digits must remain,
// so single-digit months such as "1/29" are rejected. Two-digit years map to
// the 2000s.
func Parse(raw string) (Date, error) {
	s := strings.ReplaceAll(raw, " ", "")
	s = strings.ReplaceAll(s, "/", "")
	if len(s) != 4 {
		return Date{}, ErrInvalidFormat
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Date{}, ErrInvalidFormat
		}
	}

	month := int(s[0]-'0')*10 + int(s[1]-'0')
	if month < 1 || month > 12 {
		return Date{}, ErrInvalidMonth
	}
	year := 2000 + int(s[2]-'0')*10 + int(s[3]-'0')

	return Date{Month: time.Month(month), Year: year}, nil
}

// String returns the card-face form "MM/YY".
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d", int(d.Month), d.Year%100)
}

// EndOfMonth returns the last instant of the expiration month in loc.
// A nil location falls back to UTC.
func (d Date) EndOfMonth(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	firstOfNext := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstOfNext.Add(-time.Nanosecond)
}

// ExpiredAt reports whether the card is unusable at the given moment.
// Cards stay valid through the whole expiration month, so this is true
// only strictly after the month ends in now's location.
func (d Date) ExpiredAt(now time.Time) bool {
	return now.After(d.EndOfMonth(now.Location()))
}
