package validators

import "strings"

const maxCardDigits = 16

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the first 16 digits of value in blocks of four.
// Input with fewer than four digits is returned as typed.
func FormatCardNumber(value string) string {
	d := digitsOnly(value)
	if len(d) > maxCardDigits {
		d = d[:maxCardDigits]
	}
	if len(d) < 4 {
		return value
	}

	parts := make([]string, 0, 4)
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		parts = append(parts, d[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry turns digits into MM/YY.
func FormatExpiry(value string) string {
	d := digitsOnly(value)
	if len(d) < 2 {
		return d
	}

	rest := d[2:]
	if len(rest) > 2 {
		rest = rest[:2]
	}
	return d[:2] + "/" + rest
}

// MaskCardNumber keeps only the last four digits.
func MaskCardNumber(value string) string {
	d := digitsOnly(value)
	if len(d) <= 4 {
		return d
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}
