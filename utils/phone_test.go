package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+91 98765 43210", "91-9876543210", "6123456789"}
	for _, number := range valid {
		if !ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be valid", number)
		}
	}

	invalid := []string{"", "12345", "5123456789", "98765432101", "abcdefghij"}
	for _, number := range invalid {
		if ValidatePhoneNumber(number) {
			t.Errorf("expected %q to be invalid", number)
		}
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := map[string]string{
		"9876543210":      "919876543210",
		"+91 98765 43210": "919876543210",
		"09876543210":     "919876543210",
		"919876543210":    "919876543210",
		"":                "",
	}
	for input, want := range cases {
		if got := NormalizePhoneNumber(input); got != want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", input, got, want)
		}
	}
}
