package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/alchemorsel-voice/backend/internal/model"
	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

// IRecipeService defines the interface for recipe matching
type IRecipeService interface {
	MatchRecipes(ctx context.Context, ingredients any) ([]model.ScoredRecipe, error)
}

// ISpeechService defines the interface for the speech proxy
type ISpeechService interface {
	ListVoices(ctx context.Context) (json.RawMessage, error)
	Synthesize(ctx context.Context, req *types.SpeechRequest) (*SpeechResult, error)
}

var (
	_ IRecipeService = (*RecipeService)(nil)
	_ ISpeechService = (*SpeechService)(nil)
)
