package utils

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting and prefixes the Indian country code
// when missing. Stored numbers always look like 91XXXXXXXXXX.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigitRe.ReplaceAllString(phoneNumber, "")
	if digits == "" {
		return ""
	}
	digits = strings.TrimLeft(digits, "0")
	if !strings.HasPrefix(digits, "91") || len(digits) == 10 {
		digits = "91" + digits
	}
	return digits
}

// ValidatePhoneNumber accepts a 10-digit Indian mobile number, with or
// without the country code. Mobile numbers start with 6-9.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := nonDigitRe.ReplaceAllString(phoneNumber, "")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) != 10 {
		return false
	}
	return cleaned[0] >= '6' && cleaned[0] <= '9'
}
