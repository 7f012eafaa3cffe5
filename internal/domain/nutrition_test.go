package domain

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
		{133.499999, 133.5},
		{-1.005, -1},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	banana := Macros{Calories: 89, Protein: 1.1, Fat: 0.3, Carbohydrates: 23}

	t.Run("scales per-100g macros to requested weight", func(t *testing.T) {
		got := Scale(banana, 150, 100)

		want := NutritionInfo{Calories: 133.5, Protein: 1.65, Fat: 0.45, Carbohydrates: 34.5, WeightGrams: 150}
		if got != want {
			t.Errorf("Scale = %+v, want %+v", got, want)
		}
	})

	t.Run("coerces non-positive base weight to 100", func(t *testing.T) {
		for _, base := range []float64{0, -5} {
			got := Scale(banana, 100, base)
			if got.Calories != 89 {
				t.Errorf("Scale with base %v: Calories = %v, want 89", base, got.Calories)
			}
		}
	})

	t.Run("round trip within rounding tolerance", func(t *testing.T) {
		for _, w := range []float64{1, 37, 150, 250, 1000} {
			scaled := Scale(banana, w, 100)
			back := Scale(Macros{
				Calories:      scaled.Calories,
				Protein:       scaled.Protein,
				Fat:           scaled.Fat,
				Carbohydrates: scaled.Carbohydrates,
			}, 100, w)

			if math.Abs(back.Calories-banana.Calories) > 0.51 {
				t.Errorf("round trip via %vg: Calories = %v, want ~%v", w, back.Calories, banana.Calories)
			}
			if math.Abs(back.Protein-banana.Protein) > 0.51 {
				t.Errorf("round trip via %vg: Protein = %v, want ~%v", w, back.Protein, banana.Protein)
			}
		}
	})

	t.Run("output weight is the rounded requested weight", func(t *testing.T) {
		got := Scale(banana, 33.333, 100)
		if got.WeightGrams != 33.33 {
			t.Errorf("WeightGrams = %v, want 33.33", got.WeightGrams)
		}
	})
}

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		name                string
		protein, fat, carbs float64
		want                float64
	}{
		{"protein and fat only", 26, 14, 0, 230},
		{"all macros", 10, 5, 20, 165},
		{"zero macros", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateCalories(tt.protein, tt.fat, tt.carbs); got != tt.want {
				t.Errorf("EstimateCalories(%v, %v, %v) = %v, want %v", tt.protein, tt.fat, tt.carbs, got, tt.want)
			}
		})
	}
}
