package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+48123456789", "48 123 456 789", "(48) 123-456-789"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "abc", "+", "0"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("ValidatePhone(%q) = true, want false", p)
		}
	}
}

func TestValidateVIN(t *testing.T) {
	valid := []string{"WBA8E910X0K123456", "wba8e910x0k123456", "ABC123"}
	for _, v := range valid {
		if !ValidateVIN(v) {
			t.Errorf("ValidateVIN(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "WBA8E910X0K1234567X", "VIN WITH SPACE", "ABCIOQ"}
	for _, v := range invalid {
		if ValidateVIN(v) {
			t.Errorf("ValidateVIN(%q) = true, want false", v)
		}
	}
}
