package util

import "regexp"

// Unquoted SQL identifiers: leading letter or underscore, then word
// characters plus the $ and # extensions some vendors allow.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$#]*$`)

// ValidIdentifier reports whether s is usable as an unquoted SQL identifier.
func ValidIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}
