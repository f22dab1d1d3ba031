package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone validates a patient phone number and normalizes it to
// E.164 form (leading +, digits only). Separators and surrounding
// whitespace are tolerated; a missing + is not.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.TrimSpace(phone)
	stripped = strings.ReplaceAll(stripped, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "(", "")
	stripped = strings.ReplaceAll(stripped, ")", "")

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format: must be E.164")
	}

	return stripped, nil
}

// IsValidPhoneNumber checks if a string is a valid E.164 phone number
func IsValidPhoneNumber(phone string) bool {
	_, err := NormalizePhone(phone)
	return err == nil
}
