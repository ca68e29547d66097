// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizePhone strips formatting and a leading country code so numbers
// compare consistently however the user typed them.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	cleaned = strings.TrimPrefix(cleaned, "+91")
	return cleaned
}

// ValidatePhone checks for a valid 10 digit Indian mobile number
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// ValidateOTP checks for a 6 digit numeric code
func ValidateOTP(otp string) bool {
	if len(otp) != 6 {
		return false
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CleanName trims a customer display name; returns "" when nothing is left.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}
