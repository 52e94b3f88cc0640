package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/service"
)

// LLMHandler serves recipe generation and the draft cache around it.
type LLMHandler struct {
	generator service.IGenerationService
	drafts    service.IDraftService
	logger    *zap.Logger
}

func NewLLMHandler(generator service.IGenerationService, drafts service.IDraftService, logger *zap.Logger) *LLMHandler {
	return &LLMHandler{
		generator: generator,
		drafts:    drafts,
		logger:    logger,
	}
}

// GenerateRecipes handles POST /recipes/generate.
func (h *LLMHandler) GenerateRecipes(c *gin.Context) {
	var req GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}
	if req.Ingredients == nil {
		writeError(c, fmt.Errorf("%w: ingredients must be an array of strings", service.ErrInvalidInput))
		return
	}
	if req.Preferences == nil {
		writeError(c, fmt.Errorf("%w: preferences must be an array of strings", service.ErrInvalidInput))
		return
	}

	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	candidates, err := h.generator.GenerateRecipes(c.Request.Context(), req.Ingredients, req.Preferences, req.MealType)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := GenerateRecipesResponse{Recipes: candidates}
	if draft, err := h.drafts.Save(c.Request.Context(), ownerID, candidates); err != nil {
		// The caller still gets the recipes; only the revisit shortcut is lost.
		h.logger.Warn("failed to cache generation draft", zap.Error(err))
	} else {
		resp.DraftID = draft.ID
	}

	c.JSON(http.StatusOK, resp)
}

// GetDraft handles GET /recipes/drafts/:id.
func (h *LLMHandler) GetDraft(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	draft, err := h.drafts.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft handles DELETE /recipes/drafts/:id.
func (h *LLMHandler) DeleteDraft(c *gin.Context) {
	ownerID, ok := currentOwner(c)
	if !ok {
		return
	}

	if err := h.drafts.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}
