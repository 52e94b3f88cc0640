package api

import "github.com/mealsmith/backend/internal/model"

// GenerateRecipesRequest is the caller's generation payload. Both arrays must
// be present (empty is fine) and contain only strings.
type GenerateRecipesRequest struct {
	Ingredients []string `json:"ingredients"`
	Preferences []string `json:"preferences"`
	MealType    string   `json:"mealType"`
}

// GenerateRecipesResponse carries the parsed candidates in model order plus
// the id of the cached draft, when caching succeeded.
type GenerateRecipesResponse struct {
	Recipes []model.CandidateRecipe `json:"recipes"`
	DraftID string                  `json:"draftId,omitempty"`
}
