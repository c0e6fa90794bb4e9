package types

// CaloriesUnavailable is reported when the catalog has no calorie data for a recipe.
const CaloriesUnavailable = "N/A"

// Nutrient is one entry of a catalog nutrient list
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// InstructionStep is one step of a recipe's analyzed instructions
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// RecipeSummary is a recipe as listed in BMI recommendations
type RecipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Calories       string `json:"calories"`
}

// RecipeDetail is the full view of a single catalog recipe
type RecipeDetail struct {
	ID                   int               `json:"id"`
	Title                string            `json:"title"`
	Image                string            `json:"image"`
	Ingredients          []string          `json:"ingredients"`
	Instructions         string            `json:"instructions"`
	AnalyzedInstructions []InstructionStep `json:"analyzedInstructions"`
	Calories             string            `json:"calories"`
	Nutrients            []Nutrient        `json:"nutrients"`
	SourceURL            string            `json:"sourceUrl"`
	SpoonacularScore     float64           `json:"spoonacularScore"`
	HealthScore          float64           `json:"healthScore"`
	ReadyInMinutes       int               `json:"readyInMinutes"`
	Servings             int               `json:"servings"`
}
