package normalize

import "strings"

// Name folds user text for case-insensitive comparison.
func Name(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Fields folds s and splits it on whitespace.
func Fields(s string) []string {
	return strings.Fields(Name(s))
}
