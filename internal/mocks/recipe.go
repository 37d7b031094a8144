package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-voice/backend/internal/model"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// MatchRecipes mocks the MatchRecipes method
func (m *MockRecipeService) MatchRecipes(ctx context.Context, ingredients any) ([]model.ScoredRecipe, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScoredRecipe), args.Error(1)
}
