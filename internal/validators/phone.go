package validators

import "strings"

// IsPhoneShape accepts digits with optional leading +, separators stripped.
// Salons serve walk-in clients typing their own numbers, so this stays loose.
func IsPhoneShape(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, phone)

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
