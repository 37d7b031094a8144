package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/alchemorsel-voice/backend/internal/model"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 15, c.Len())

	recipes := c.Recipes()
	assert.Equal(t, "omelette-basic", recipes[0].ID)
	assert.Equal(t, "Egg Fried Rice", recipes[len(recipes)-1].Title)

	rice := 0
	for _, r := range recipes {
		if r.ID == "rice" {
			rice++
		}
	}
	assert.Equal(t, 3, rice, "duplicate ids are kept")
}

func TestNewNormalizesIngredients(t *testing.T) {
	c := New([]model.Recipe{{ID: "x", Title: "X", Ingredients: []string{" Egg ", "SALT"}}})
	assert.Equal(t, []string{"egg", "salt"}, c.Recipes()[0].Ingredients)
}

func TestCatalogIsImmutable(t *testing.T) {
	source := []model.Recipe{{ID: "x", Title: "X", Ingredients: []string{"egg"}, Steps: []string{"cook"}}}
	c := New(source)

	source[0].Ingredients[0] = "changed"
	got := c.Recipes()
	got[0].Ingredients[0] = "mutated"
	got[0].Steps[0] = "mutated"

	again := c.Recipes()
	assert.Equal(t, []string{"egg"}, again[0].Ingredients)
	assert.Equal(t, []string{"cook"}, again[0].Steps)
}

func TestEachPreservesOrder(t *testing.T) {
	c := New([]model.Recipe{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	var ids []string
	c.Each(func(r model.Recipe) { ids = append(ids, r.ID) })
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
