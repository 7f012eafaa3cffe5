package usecase

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

// Similarity scoring tiers. Empirically chosen; the suggest floor is looser
// than the acceptance threshold so autocomplete can show near-misses.
const (
	exactScore          = 1.0
	substringScore      = 0.85
	acceptanceThreshold = 0.65
	suggestionFloor     = 0.35

	defaultSuggestLimit = 5
)

// Matcher resolves free text against the loaded dictionary. The entry slice
// is read-only after construction.
type Matcher struct {
	entries []domain.DictionaryEntry
	logger  zerolog.Logger
}

// NewMatcher creates a matcher over the given dictionary entries.
func NewMatcher(entries []domain.DictionaryEntry, logger zerolog.Logger) *Matcher {
	return &Matcher{
		entries: entries,
		logger:  logger.With().Str("component", "matcher").Logger(),
	}
}

// FindBestMatch returns the single best dictionary variant for the query,
// or nil when the query is blank, the dictionary is empty, or no alias
// scores at least the acceptance threshold. The first exact alias hit wins
// immediately; otherwise the highest-scoring alias is kept, first found on
// ties.
func (m *Matcher) FindBestMatch(query string) *domain.DictionaryMatch {
	normalized := NormalizeQuery(query)
	if normalized == "" || len(m.entries) == 0 {
		return nil
	}

	var best *domain.DictionaryMatch
	bestScore := 0.0

	for _, entry := range m.entries {
		for _, variant := range entry.Variants {
			for _, alias := range entryAliases(entry, variant) {
				score := scoreAlias(normalized, NormalizeQuery(alias))
				if score == exactScore {
					return &domain.DictionaryMatch{VariantName: variant.Name, Macros: variant.Macros}
				}
				if score > bestScore {
					bestScore = score
					best = &domain.DictionaryMatch{VariantName: variant.Name, Macros: variant.Macros}
				}
			}
		}
	}

	if bestScore < acceptanceThreshold {
		return nil
	}

	m.logger.Debug().Str("query", normalized).Float64("score", bestScore).
		Str("variant", best.VariantName).Msg("dictionary match accepted")
	return best
}

// Suggest returns up to limit autocomplete candidates, sorted by descending
// score with ties broken by ascending display name. Blank queries and an
// empty dictionary yield an empty slice, never an error.
func (m *Matcher) Suggest(query string, limit int) []domain.Suggestion {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	normalized := NormalizeQuery(query)
	if normalized == "" || len(m.entries) == 0 {
		return []domain.Suggestion{}
	}

	type scored struct {
		score      float64
		suggestion domain.Suggestion
	}
	var results []scored

	for _, entry := range m.entries {
		for _, variant := range entry.Variants {
			// Every qualifying alias contributes a candidate; identical
			// rows for the same variant are collapsed before sorting.
			best := 0.0
			for _, alias := range entryAliases(entry, variant) {
				if score := scoreAlias(normalized, NormalizeQuery(alias)); score > best {
					best = score
				}
			}
			if best < suggestionFloor {
				continue
			}

			results = append(results, scored{
				score: best,
				suggestion: domain.Suggestion{
					VariantName:   variant.Name,
					BaseProduct:   entry.TitleRu,
					DisplayName:   entry.TitleRu + " · " + variant.Name,
					Query:         entry.TitleEn,
					Calories:      variant.Calories,
					Protein:       variant.Protein,
					Fat:           variant.Fat,
					Carbohydrates: variant.Carbohydrates,
				},
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].suggestion.DisplayName < results[j].suggestion.DisplayName
	})

	if len(results) > limit {
		results = results[:limit]
	}

	suggestions := make([]domain.Suggestion, len(results))
	for i, r := range results {
		suggestions[i] = r.suggestion
	}
	return suggestions
}

// entryAliases lists every matchable handle for an entry/variant pair: the
// free-text aliases, both canonical titles, and the variant name itself.
func entryAliases(entry domain.DictionaryEntry, variant domain.Variant) []string {
	aliases := make([]string, 0, len(entry.Aliases)+3)
	aliases = append(aliases, entry.Aliases...)
	aliases = append(aliases, entry.TitleRu, entry.TitleEn, variant.Name)
	return aliases
}

// scoreAlias computes the three-tier score between a normalized query and a
// normalized alias: exact match, substring containment, then edit-distance
// similarity.
func scoreAlias(query, alias string) float64 {
	if alias == "" {
		return 0
	}
	if query == alias {
		return exactScore
	}
	if strings.Contains(query, alias) || strings.Contains(alias, query) {
		return substringScore
	}
	return similarity(query, alias)
}

// similarity is the normalized edit-distance score 1 - d/max(len a, len b),
// in [0,1], symmetric, and 1.0 only for equal strings. Lengths are counted
// in runes so Cyrillic input scores the same as Latin.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	return 1.0 - float64(levenshteinDistance(ra, rb))/float64(maxLen)
}

// levenshteinDistance is the classic dynamic-program edit distance with
// unit costs, using two rows instead of the full matrix.
func levenshteinDistance(r1, r2 []rune) int {
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	n := len(r2)
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
