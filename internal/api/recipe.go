package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-voice/backend/internal/service"
	"github.com/pageza/alchemorsel-voice/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes", h.MatchRecipes)
}

// MatchRecipes returns every catalog recipe sharing at least one ingredient
// with the request, best match first. An unreadable body counts as empty.
func (h *RecipeHandler) MatchRecipes(c *gin.Context) {
	var req types.RecipeSearchRequest
	_ = c.ShouldBindJSON(&req)

	recipes, err := h.recipeService.MatchRecipes(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}
