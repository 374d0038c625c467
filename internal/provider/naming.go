package provider

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeySeparator separates words in external key spelling ("street_address").
const KeySeparator = "_"

// CapabilityName translates an external key into a capability name:
// split on KeySeparator, keep the first segment, upper-case the first letter
// of every later segment, and join.
//
//	"street_address"    → "streetAddress"
//	"firstName"         → "firstName"
//	"country_code_long" → "countryCodeLong"
func CapabilityName(key string) string {
	parts := strings.Split(key, KeySeparator)
	if len(parts) == 1 {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// ProviderName translates a category name into a provider display name.
//
//	"phone_number" → "PhoneNumber"
func ProviderName(category string) string {
	return upperFirst(CapabilityName(category))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
