package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pageza/calorie-craft/backend/internal/types"
)

// RecommendationService combines BMI classification with catalog lookups
type RecommendationService struct {
	catalog ICatalogService
	logger  *slog.Logger
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(catalog ICatalogService) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		logger:  slog.Default(),
	}
}

// CalculateAndRecommend classifies the BMI and fetches recipes for the
// category. A catalog failure fails the whole call; there is no BMI-only
// result.
func (s *RecommendationService) CalculateAndRecommend(ctx context.Context, heightCm, weightKg float64) (*types.BMIRecommendation, error) {
	result := Classify(heightCm, weightKg)

	recipes, err := s.catalog.SearchByCategory(ctx, result.Category)
	if err != nil {
		s.logger.ErrorContext(ctx, "recipe search failed", "category", result.Category, "error", err)
		return nil, err
	}

	return &types.BMIRecommendation{
		BMI:      result.BMI,
		Category: result.Category,
		Recipes:  recipes,
	}, nil
}

// GetRecipeDetails returns one recipe's details. An empty id fails with
// ErrMissingIdentifier before the catalog is contacted.
func (s *RecommendationService) GetRecipeDetails(ctx context.Context, id string) (*types.RecipeDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingIdentifier
	}

	detail, err := s.catalog.GetDetailsByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "recipe detail lookup failed", "recipe_id", id, "error", err)
		return nil, err
	}
	return detail, nil
}
