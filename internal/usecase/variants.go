package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

// nonASCIIRegex strips everything but ASCII letters, digits and whitespace
// for the ascii-only fallback variant.
var nonASCIIRegex = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// cyrillicToLatin is a practical transliteration table. Multi-letter
// replacements are intentional (ж -> zh); hard and soft signs drop out.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya", 'ґ': "g", 'ї': "yi",
	'і': "i",
}

// BuildQueryVariants turns one free-text query plus the requested weight
// into the ordered, de-duplicated fallback sequence tried against the
// external API. An empty result means there is nothing to try.
func BuildQueryVariants(query string, requestedWeight float64) []domain.QueryVariant {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return nil
	}

	type baseVariant struct {
		text   string
		reason string
	}
	bases := []baseVariant{{normalized, "original/primary"}}

	if t := Transliterate(normalized); t != "" && !strings.EqualFold(t, normalized) {
		bases = append(bases, baseVariant{t, "transliterated"})
	}
	if a := stripNonASCII(normalized); a != "" && !strings.EqualFold(a, normalized) {
		bases = append(bases, baseVariant{a, "ascii-only"})
	}
	if first, _, found := strings.Cut(normalized, " "); found && !strings.EqualFold(first, normalized) {
		bases = append(bases, baseVariant{first, "first-word"})
	}

	weights := weightCandidates(requestedWeight)

	seen := make(map[string]struct{})
	var variants []domain.QueryVariant
	for _, base := range bases {
		for _, w := range weights {
			key := strings.ToLower(base.text) + "|" + formatWeight(w)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			variants = append(variants, domain.QueryVariant{
				ProductQuery: base.text,
				WeightGrams:  w,
				Reason:       base.reason + "/" + formatWeight(w) + "g",
			})
		}
	}

	return variants
}

// weightCandidates lists the weights to try for each base text, in priority
// order: the requested weight itself, then the common serving sizes the
// external API answers best for. Filtered to positive values, first
// occurrence wins.
func weightCandidates(requestedWeight float64) []float64 {
	var candidates []float64
	if requestedWeight > 0 {
		candidates = append(candidates, domain.Round2(requestedWeight))
	}
	if requestedWeight != 100 {
		candidates = append(candidates, 100)
	}
	if requestedWeight > 150 && requestedWeight != 200 {
		candidates = append(candidates, 200)
	}
	if requestedWeight != 50 {
		candidates = append(candidates, 50)
	}

	seen := make(map[float64]struct{}, len(candidates))
	result := candidates[:0]
	for _, w := range candidates {
		if w <= 0 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		result = append(result, w)
	}
	return result
}

// Transliterate maps Cyrillic letters to Latin using the fixed substitution
// table; anything not in the table passes through unchanged.
func Transliterate(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if replacement, ok := cyrillicToLatin[unicode.ToLower(r)]; ok {
			sb.WriteString(replacement)
		} else {
			sb.WriteRune(r)
		}
	}

	return NormalizeQuery(sb.String())
}

// stripNonASCII drops every character that is not an ASCII letter, digit or
// space, then re-collapses whitespace.
func stripNonASCII(s string) string {
	return NormalizeQuery(nonASCIIRegex.ReplaceAllString(s, " "))
}

// formatWeight renders a weight without trailing zeros ("150", "33.33").
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
