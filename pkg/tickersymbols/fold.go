package tickersymbols

import "golang.org/x/text/cases"

// equalFold reports whether a and b are equal under Unicode case folding.
// Casers keep state, so a new one is taken for every call.
func equalFold(a, b string) bool {
	if a == b {
		return true
	}
	return cases.Fold().String(a) == cases.Fold().String(b)
}
