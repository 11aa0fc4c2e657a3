// Package phone canonicalizes user-entered phone numbers to the
// international Indonesian form (62xxxxxxxxx).
package phone

import (
	"errors"
	"strings"
)

// ErrInvalidPhoneFormat is returned when the input cannot be canonicalized
// to a 62-prefixed number of 11 to 15 digits.
var ErrInvalidPhoneFormat = errors.New("invalid phone format")

const (
	countryPrefix = "62"
	minDigits     = 11
	maxDigits     = 15
)

// Normalize strips every non-digit character and rewrites local prefixes to
// the international form: a leading "0" becomes "62", a bare leading "8"
// gets "62" prepended, anything else is left as-is. The result must start
// with "62" and be 11-15 digits long. Normalize is idempotent.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return "", ErrInvalidPhoneFormat
	case strings.HasPrefix(digits, "0"):
		digits = countryPrefix + digits[1:]
	case strings.HasPrefix(digits, "8"):
		digits = countryPrefix + digits
	}

	if !strings.HasPrefix(digits, countryPrefix) {
		return "", ErrInvalidPhoneFormat
	}
	if len(digits) < minDigits || len(digits) > maxDigits {
		return "", ErrInvalidPhoneFormat
	}

	return digits, nil
}
