package service

import (
	"context"

	"github.com/pageza/calorie-craft/backend/internal/types"
)

// ICatalogService defines the operations backed by the external recipe catalog
type ICatalogService interface {
	SearchByCategory(ctx context.Context, category types.Category) ([]types.RecipeSummary, error)
	GetDetailsByID(ctx context.Context, id string) (*types.RecipeDetail, error)
}

// IRecommendationService defines the operations exposed to the HTTP layer
type IRecommendationService interface {
	CalculateAndRecommend(ctx context.Context, heightCm, weightKg float64) (*types.BMIRecommendation, error)
	GetRecipeDetails(ctx context.Context, id string) (*types.RecipeDetail, error)
}
