package utils

import "regexp"

// local@domain with a dot in the domain and no whitespace anywhere.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a conventional address shape.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// AnyEmpty reports whether any of the given fields is the empty string.
func AnyEmpty(fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			return true
		}
	}
	return false
}
