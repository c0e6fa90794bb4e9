package mocks

import (
	"context"

	"github.com/pageza/calorie-craft/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecommendationService is a mock implementation of the recommendation service
type MockRecommendationService struct {
	mock.Mock
}

// CalculateAndRecommend mocks the CalculateAndRecommend method
func (m *MockRecommendationService) CalculateAndRecommend(ctx context.Context, heightCm, weightKg float64) (*types.BMIRecommendation, error) {
	args := m.Called(ctx, heightCm, weightKg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.BMIRecommendation), args.Error(1)
}

// GetRecipeDetails mocks the GetRecipeDetails method
func (m *MockRecommendationService) GetRecipeDetails(ctx context.Context, id string) (*types.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}
