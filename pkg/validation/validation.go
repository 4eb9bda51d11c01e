// Package validation holds string checks shared by request binding and the core
package validation

import "strings"

// IsNotBlank reports whether s has any non-whitespace content
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims s and reports whether anything is left
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
