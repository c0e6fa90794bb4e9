package service

import "github.com/pageza/calorie-craft/backend/internal/types"

// QueryParams are the catalog search parameters for a category.
// A nil bound means the search is unbounded on that side.
type QueryParams struct {
	SearchTerm  string
	MinCalories *int
	MaxCalories *int
}

type queryRule struct {
	term     string
	min, max int // 0 means unbounded
}

// categoryQueries is the only place search shaping lives.
var categoryQueries = map[types.Category]queryRule{
	types.CategoryUnderweight: {term: "high calorie", min: 600},
	types.CategoryNormal:      {term: "healthy", min: 400, max: 600},
	types.CategoryOverweight:  {term: "low calorie", max: 400},
	types.CategoryObesity:     {term: "low calorie", max: 300},
}

// defaultQuery is used for any category not in categoryQueries.
var defaultQuery = queryRule{term: "healthy"}

// ToQueryParams returns the search parameters for a category. Unknown
// categories fall back to an unbounded "healthy" search.
func ToQueryParams(category types.Category) QueryParams {
	rule, ok := categoryQueries[category]
	if !ok {
		rule = defaultQuery
	}

	params := QueryParams{SearchTerm: rule.term}
	if rule.min > 0 {
		lo := rule.min
		params.MinCalories = &lo
	}
	if rule.max > 0 {
		hi := rule.max
		params.MaxCalories = &hi
	}
	return params
}
