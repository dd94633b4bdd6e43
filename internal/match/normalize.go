package match

import (
	"strings"
	"unicode"
)

// Fold lower-cases s and drops word separators: "Billing-Account" and
// "billing_account" both fold to "billingaccount".
func Fold(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
