// Package dictionary loads the bundled curated food dictionary. The store
// is read-only for the process lifetime; a missing or corrupt file is a
// non-fatal condition and lookup degrades to external-only mode.
package dictionary

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"github.com/SOLOMA2/RecipeApp/internal/domain"
)

// Load reads dictionary entries from the JSON file at path. It returns an
// empty slice when the file is missing or the document cannot be parsed.
// A single malformed entry is skipped without aborting the rest of the load.
func Load(path string, logger zerolog.Logger) []domain.DictionaryEntry {
	logger = logger.With().Str("component", "dictionary").Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("nutrition dictionary not loaded")
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("nutrition dictionary is not a JSON array")
		return nil
	}

	entries := make([]domain.DictionaryEntry, 0, len(raw))
	for i, item := range raw {
		var entry domain.DictionaryEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("skipping malformed dictionary entry")
			continue
		}
		entries = append(entries, sanitize(entry, logger))
	}

	logger.Info().Int("entries", len(entries)).Str("path", path).Msg("nutrition dictionary loaded")
	return entries
}

// sanitize drops variants carrying negative macro values; every kept
// variant satisfies the non-negativity invariant.
func sanitize(entry domain.DictionaryEntry, logger zerolog.Logger) domain.DictionaryEntry {
	kept := entry.Variants[:0]
	for _, v := range entry.Variants {
		if v.Calories < 0 || v.Protein < 0 || v.Fat < 0 || v.Carbohydrates < 0 {
			logger.Warn().Str("entry", entry.ID).Str("variant", v.Name).
				Msg("skipping variant with negative macros")
			continue
		}
		kept = append(kept, v)
	}
	entry.Variants = kept
	return entry
}
