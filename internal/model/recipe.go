package model

// Recipe is a catalog entry. Ingredient names are lowercase. IDs are not
// guaranteed to be unique.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// ScoredRecipe is a Recipe annotated with the number of ingredients it shares
// with a search request.
type ScoredRecipe struct {
	Recipe
	Score int `json:"score"`
}

// Clone returns a deep copy so callers cannot reach the catalog's slices.
func (r Recipe) Clone() Recipe {
	return Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: append([]string(nil), r.Ingredients...),
		Steps:       append([]string(nil), r.Steps...),
	}
}
