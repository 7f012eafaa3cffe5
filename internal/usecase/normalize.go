package usecase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery canonicalizes free text for matching: NFC so composed and
// decomposed Cyrillic input compare equal, trimmed, lowercased, with internal
// whitespace collapsed to single spaces. Idempotent.
func NormalizeQuery(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
