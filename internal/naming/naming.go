// Package naming derives identifiers (accessor names, API class names,
// project titles) from contract names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultAPIName = "DefaultApi"

// Capitalize upper-cases the first letter and leaves the rest untouched:
// "topupId" -> "TopupId".
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	// Casers carry state; one per call.
	return cases.Upper(language.Und).String(string(first)) + s[size:]
}

// LowerCamel converts a type name to a property name: "MobileSubscription"
// -> "mobileSubscription".
func LowerCamel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Getter returns the getter name for a property name.
func Getter(name string) string {
	return "get" + Capitalize(name)
}

// Setter returns the setter name for a property name.
func Setter(name string) string {
	return "set" + Capitalize(name)
}

// Sanitize drops every rune that cannot take part in an identifier. Word
// separators (space, '-', '_') are kept for camel casing.
func Sanitize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '-' || r == ' ':
			b.WriteRune(r)
		}
	}

	return b.String()
}

// APIName returns the class name of an operation group:
// "billing-account" -> "BillingAccountApi", "" -> "DefaultApi".
func APIName(group string) string {
	name := Sanitize(group)
	if name == "" {
		return defaultAPIName
	}

	return strcase.ToCamel(name) + "Api"
}

// Title derives a project title from an API title:
// "Account Management API" -> "accountManagement".
func Title(apiTitle string) string {
	title := strings.ReplaceAll(strings.TrimSpace(apiTitle), " ", "-")
	if strings.HasSuffix(strings.ToUpper(title), "API") {
		title = title[:len(title)-3]
	}

	return strcase.ToLowerCamel(Sanitize(title))
}
