package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-voice/backend/internal/catalog"
	"github.com/pageza/alchemorsel-voice/backend/internal/model"
)

// RecipeService matches ingredient lists against the recipe catalog
type RecipeService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(c *catalog.Catalog, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		catalog: c,
		logger:  logger,
	}
}

// NormalizeIngredients accepts a comma separated string or a slice and returns
// the trimmed, lowercased names. Non-string slice elements and blank names are
// dropped. An empty result is an InvalidInputError.
func NormalizeIngredients(raw any) ([]string, error) {
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	ingredients := make([]string, 0, len(items))
	for _, item := range items {
		if name := strings.ToLower(strings.TrimSpace(item)); name != "" {
			ingredients = append(ingredients, name)
		}
	}

	if len(ingredients) == 0 {
		return nil, &InvalidInputError{Message: "Please provide ingredients"}
	}
	return ingredients, nil
}

// MatchRecipes scores every catalog recipe by the number of distinct
// ingredients it shares with the request and returns those with a positive
// score, highest first. Equal scores keep catalog order.
func (s *RecipeService) MatchRecipes(ctx context.Context, raw any) ([]model.ScoredRecipe, error) {
	ingredients, err := NormalizeIngredients(raw)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ingredients))
	for _, name := range ingredients {
		wanted[name] = struct{}{}
	}

	matches := []model.ScoredRecipe{}
	s.catalog.Each(func(recipe model.Recipe) {
		if score := overlap(recipe.Ingredients, wanted); score > 0 {
			matches = append(matches, model.ScoredRecipe{Recipe: recipe.Clone(), Score: score})
		}
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	s.logger.Debug("matched recipes",
		zap.Strings("ingredients", ingredients),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}

// overlap counts distinct recipe ingredients present in wanted.
func overlap(recipeIngredients []string, wanted map[string]struct{}) int {
	seen := make(map[string]struct{}, len(recipeIngredients))
	score := 0
	for _, name := range recipeIngredients {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := wanted[name]; ok {
			score++
		}
	}
	return score
}
