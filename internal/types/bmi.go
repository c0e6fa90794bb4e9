package types

// Category is a BMI classification label.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObesity     Category = "Obesity"
)

// Categories lists every category in threshold order.
var Categories = []Category{
	CategoryUnderweight,
	CategoryNormal,
	CategoryOverweight,
	CategoryObesity,
}

// Gender is accepted by the BMI endpoint but not used for classification yet.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// BMIResult is a computed BMI. BMI is already formatted with two decimals.
type BMIResult struct {
	BMI      string   `json:"bmi"`
	Category Category `json:"category"`
}

// BMIRecommendation is the response of the BMI endpoint
type BMIRecommendation struct {
	BMI      string          `json:"bmi"`
	Category Category        `json:"category"`
	Recipes  []RecipeSummary `json:"recipes"`
}
