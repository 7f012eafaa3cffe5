package domain

import "math"

// Macros holds the four nutrition quantities tracked throughout the system.
// On dictionary variants and cached entries they are defined per 100 grams.
type Macros struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`       // grams
	Fat           float64 `json:"fat"`           // grams
	Carbohydrates float64 `json:"carbohydrates"` // grams
}

// NutritionInfo is the final lookup result, already scaled to the weight
// the caller asked for.
type NutritionInfo struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
	WeightGrams   float64 `json:"weightGrams"`
}

// QueryVariant is one (candidate text, candidate weight) pair tried against
// the external nutrition API. Reason is a human-readable tag for logs,
// e.g. "transliterated/100g". Variants form an ordered fallback sequence,
// not a set.
type QueryVariant struct {
	ProductQuery string
	WeightGrams  float64
	Reason       string
}

// LookupRequest is the inbound body of POST /api/v1/nutrition/lookup.
type LookupRequest struct {
	Query       string  `json:"query" binding:"required,max=200"`
	WeightGrams float64 `json:"weightGrams" binding:"required,gt=0"`
}

// Round2 rounds to 2 decimal places. All user-facing nutrition values go
// through this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Scale converts macros defined over baseWeight grams to requestedWeight
// grams. A non-positive base weight is coerced to 100 so the division is
// always safe.
func Scale(m Macros, requestedWeight, baseWeight float64) NutritionInfo {
	if baseWeight <= 0 {
		baseWeight = 100
	}

	scale := requestedWeight / baseWeight
	return NutritionInfo{
		Calories:      Round2(m.Calories * scale),
		Protein:       Round2(m.Protein * scale),
		Fat:           Round2(m.Fat * scale),
		Carbohydrates: Round2(m.Carbohydrates * scale),
		WeightGrams:   Round2(requestedWeight),
	}
}

// EstimateCalories derives a calorie value from macros using the Atwater
// factors (4 kcal/g protein, 4 kcal/g carbohydrate, 9 kcal/g fat).
func EstimateCalories(protein, fat, carbs float64) float64 {
	return Round2(protein*4 + carbs*4 + fat*9)
}
