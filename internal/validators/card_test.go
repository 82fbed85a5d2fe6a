package validators

import "testing"

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4242424242424242", "4242 4242 4242 4242"},
		{"4242-4242 4242", "4242 4242 4242"},
		{"42424", "4242 4"},
		{"42", "42"},
		{"4242424242424242999", "4242 4242 4242 4242"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatCardNumber(tt.in); got != tt.want {
			t.Errorf("FormatCardNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"12", "12/"},
		{"1228", "12/28"},
		{"12/28", "12/28"},
		{"122899", "12/28"},
	}

	for _, tt := range tests {
		if got := FormatExpiry(tt.in); got != tt.want {
			t.Errorf("FormatExpiry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMaskCardNumber(t *testing.T) {
	if got := MaskCardNumber("4242 4242 4242 4242"); got != "************4242" {
		t.Errorf("unexpected mask %q", got)
	}
}
