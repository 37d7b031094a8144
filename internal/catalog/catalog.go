// Package catalog holds the read-only recipe catalog the matcher searches.
//
// A Catalog is built once at startup and never mutated afterwards, so it can be
// shared by concurrent requests without locking. Declaration order is kept and
// is the tie-break order for equally scored matches.
package catalog

import (
	"strings"

	"github.com/pageza/alchemorsel-voice/backend/internal/model"
)

// Catalog is an immutable, ordered list of recipes.
type Catalog struct {
	recipes []model.Recipe
}

// New copies recipes into a Catalog, lowercasing and trimming ingredient names.
func New(recipes []model.Recipe) *Catalog {
	c := &Catalog{recipes: make([]model.Recipe, 0, len(recipes))}
	for _, r := range recipes {
		r = r.Clone()
		for i, ing := range r.Ingredients {
			r.Ingredients[i] = strings.ToLower(strings.TrimSpace(ing))
		}
		c.recipes = append(c.recipes, r)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultRecipes)
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Recipes returns a deep copy of the recipes in declaration order.
func (c *Catalog) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Each calls fn for every recipe in declaration order. fn must not retain or
// modify the recipe's slices.
func (c *Catalog) Each(fn func(model.Recipe)) {
	for _, r := range c.recipes {
		fn(r)
	}
}
