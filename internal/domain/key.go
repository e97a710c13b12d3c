package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeKey reduces a name to the key used for uniqueness checks and
// lookups: surrounding whitespace is trimmed and letters are case-folded,
// so " Milk ", "milk" and "MILK" all map to the same key. The original
// casing is kept on the stored value for display.
func NormalizeKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
