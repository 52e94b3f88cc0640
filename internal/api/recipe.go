package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/model"
	"github.com/mealsmith/backend/internal/service"
)

// RecipeHandler serves the owner-scoped recipe lifecycle.
type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// CreateRecipe handles POST /recipes.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var candidate model.CandidateRecipe
	if err := c.ShouldBindJSON(&candidate); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), ownerID, &candidate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "recipe saved", "recipe": recipe})
}

// ListRecipes handles GET /recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), ownerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe handles GET /recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// UpdateRecipe handles PATCH /recipes/:id with a merge patch.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var patch model.RecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), ownerID, c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe updated", "recipe": recipe})
}

// DeleteRecipe handles DELETE /recipes/:id.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// FavouriteRecipe handles POST /recipes/:id/favourite.
func (h *RecipeHandler) FavouriteRecipe(c *gin.Context) {
	h.setFavourite(c, true)
}

// UnfavouriteRecipe handles DELETE /recipes/:id/favourite.
func (h *RecipeHandler) UnfavouriteRecipe(c *gin.Context) {
	h.setFavourite(c, false)
}

func (h *RecipeHandler) setFavourite(c *gin.Context, favourite bool) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.SetFavourite(c.Request.Context(), ownerID, c.Param("id"), favourite)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// EnrichNutrition handles POST /recipes/:id/nutrition.
func (h *RecipeHandler) EnrichNutrition(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.EnrichNutrition(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
