// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var vinRegex = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{1,17}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateVIN accepts up to 17 uppercase alphanumeric characters. I, O and Q
// never appear in a VIN.
func ValidateVIN(vin string) bool {
	return vinRegex.MatchString(strings.ToUpper(strings.TrimSpace(vin)))
}
