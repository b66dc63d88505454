package returns

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// badConditions is the fixed vocabulary that triggers an alert on
// return. Matching is against the normalized condition string.
var badConditions = map[string]struct{}{
	"malo":        {},
	"mal":         {},
	"defectuoso":  {},
	"dañado":      {},
	"deteriorado": {},
}

// normalizeCondition folds the free-text condition to NFC, trims it
// and lowercases it. NFC first, so "dañado" typed with a combining
// tilde still matches the vocabulary.
func normalizeCondition(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

func isBadCondition(normalized string) bool {
	_, ok := badConditions[normalized]
	return ok
}
