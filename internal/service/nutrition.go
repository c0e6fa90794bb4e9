package service

import (
	"math"
	"strconv"

	"github.com/pageza/calorie-craft/backend/internal/types"
)

const caloriesNutrient = "Calories"

// FindNutrient returns the amount of the first nutrient whose name matches
// exactly. The match is case-sensitive.
func FindNutrient(nutrients []types.Nutrient, name string) (float64, bool) {
	for _, n := range nutrients {
		if n.Name == name {
			return n.Amount, true
		}
	}
	return 0, false
}

// FormatCalories renders a calorie amount rounded to a whole number, or
// types.CaloriesUnavailable when there is none.
func FormatCalories(amount float64, ok bool) string {
	if !ok {
		return types.CaloriesUnavailable
	}
	return strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
}

// caloriesOf is FindNutrient and FormatCalories for the "Calories" entry.
func caloriesOf(nutrients []types.Nutrient) string {
	return FormatCalories(FindNutrient(nutrients, caloriesNutrient))
}
