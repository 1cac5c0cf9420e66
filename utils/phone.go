package utils

import (
	"fmt"
	"strings"
)

// FormatPhoneNumber normalizes a raw phone string into E.164 form.
// Bare 10-digit numbers are assumed to be US/Canada; an existing country
// code (11 digits leading 1, or a "+" prefix) is kept as-is.
func FormatPhoneNumber(raw string) (string, error) {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return "", fmt.Errorf("phone number %q contains no digits", raw)
	}

	if hasPlus {
		return "+" + d, nil
	}
	switch {
	case len(d) == 10:
		return "+1" + d, nil
	case len(d) == 11 && d[0] == '1':
		return "+" + d, nil
	case len(d) >= 11 && len(d) <= 15:
		return "+" + d, nil
	default:
		return "", fmt.Errorf("phone number %q has an unexpected length", raw)
	}
}
