package domain

import "strings"

// NormalizePhone reduces a phone number to its canonical digits-only form:
// "(11) 99999-9999" becomes "11999999999". Everything that is not an ASCII
// digit is dropped.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether the canonical form of phone has 10 to 15 digits.
func ValidPhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n >= 10 && n <= 15
}
