package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns s in NFC form with Unicode case folding applied, so that
// "Chemie", "CHEMIE" and a decomposed "chemie" compare equal.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func FoldEqual(a, b string) bool {
	return Fold(a) == Fold(b)
}

func FoldContains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
