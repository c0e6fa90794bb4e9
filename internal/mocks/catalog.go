package mocks

import (
	"context"

	"github.com/pageza/calorie-craft/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of the recipe catalog
type MockCatalogService struct {
	mock.Mock
}

// SearchByCategory mocks the SearchByCategory method
func (m *MockCatalogService) SearchByCategory(ctx context.Context, category types.Category) ([]types.RecipeSummary, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

// GetDetailsByID mocks the GetDetailsByID method
func (m *MockCatalogService) GetDetailsByID(ctx context.Context, id string) (*types.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}
