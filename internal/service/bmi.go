package service

import (
	"fmt"

	"github.com/pageza/calorie-craft/backend/internal/types"
)

// BMI thresholds. Each bound belongs to the category above it.
const (
	normalWeightFloor = 18.5
	overweightFloor   = 25.0
	obesityFloor      = 30.0
)

// Classify computes the BMI for a height in centimetres and a weight in
// kilograms. Both must be positive; callers validate input beforehand.
func Classify(heightCm, weightKg float64) types.BMIResult {
	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)

	return types.BMIResult{
		BMI:      fmt.Sprintf("%.2f", value),
		Category: categoryFor(value),
	}
}

// categoryFor compares the unrounded value so that e.g. 24.996 stays Normal
// weight even though it prints as "25.00".
func categoryFor(value float64) types.Category {
	switch {
	case value < normalWeightFloor:
		return types.CategoryUnderweight
	case value < overweightFloor:
		return types.CategoryNormal
	case value < obesityFloor:
		return types.CategoryOverweight
	default:
		return types.CategoryObesity
	}
}
