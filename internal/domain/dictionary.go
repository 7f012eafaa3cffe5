package domain

// DictionaryEntry is one curated food from the bundled dictionary file.
// Entries are loaded once at startup and never mutated afterwards, so they
// are shared by all requests without locking.
type DictionaryEntry struct {
	ID       string    `json:"id"`
	TitleRu  string    `json:"titleRu"`
	TitleEn  string    `json:"titleEn"`
	Aliases  []string  `json:"aliases"`
	Variants []Variant `json:"variants"`
}

// Variant is a named serving/preparation form of a dictionary entry
// ("raw", "boiled", ...) with its own macro profile per 100 grams.
type Variant struct {
	Name string `json:"name"`
	Macros
}

// DictionaryMatch is the outcome of resolving free text to a single best
// dictionary variant. Macros are still per 100 grams.
type DictionaryMatch struct {
	VariantName string
	Macros
}

// Suggestion is one autocomplete candidate produced by the dictionary.
type Suggestion struct {
	VariantName   string  `json:"variantName"`
	BaseProduct   string  `json:"baseProduct"`
	DisplayName   string  `json:"displayName"`
	Query         string  `json:"query"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}
