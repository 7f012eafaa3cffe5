package ninjas

import "encoding/json"

// nutritionItem is one element of the API Ninjas response array. Numeric
// fields are tier-gated upstream and may arrive as an explanatory string
// instead of a number.
type nutritionItem struct {
	Name               string     `json:"name"`
	ServingSizeG       flexNumber `json:"serving_size_g"`
	Calories           flexNumber `json:"calories"`
	Protein            flexNumber `json:"protein_g"`
	FatTotal           flexNumber `json:"fat_total_g"`
	CarbohydratesTotal flexNumber `json:"carbohydrates_total_g"`
}

// flexNumber decodes either a JSON number or anything else; non-numeric
// values resolve to 0 rather than failing the whole response.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = flexNumber(n)
	return nil
}
