package service

import (
	"context"

	"github.com/mealsmith/backend/internal/model"
)

// CompletionClient is the outbound boundary to the chat-completion provider.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NutritionClient is the outbound boundary to the nutrition-analysis provider.
type NutritionClient interface {
	Analyze(ctx context.Context, recipe *model.Recipe) (*model.Nutrition, error)
}

// RecipeStore is a view of the recipe collection bound to a single owner.
// Every lookup filters on the owner id, so a foreign record is
// indistinguishable from a missing one.
type RecipeStore interface {
	Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Update(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// RecipeRepository hands out owner-scoped stores. Binding the owner at
// construction keeps the ownership filter in one place instead of repeating
// it per operation.
type RecipeRepository interface {
	Owner(ownerID string) RecipeStore
}

// IGenerationService runs the prompt -> completion -> extract -> parse pipeline.
type IGenerationService interface {
	GenerateRecipes(ctx context.Context, ingredients, preferences []string, mealType string) ([]model.CandidateRecipe, error)
}

// IDraftService caches generated candidate sets until they are saved or
// discarded.
type IDraftService interface {
	Save(ctx context.Context, ownerID string, recipes []model.CandidateRecipe) (*Draft, error)
	Get(ctx context.Context, ownerID, id string) (*Draft, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// IRecipeService defines the owner-scoped recipe lifecycle operations.
type IRecipeService interface {
	Create(ctx context.Context, ownerID string, candidate *model.CandidateRecipe) (*model.Recipe, error)
	List(ctx context.Context, ownerID string) ([]model.Recipe, error)
	Get(ctx context.Context, ownerID, id string) (*model.Recipe, error)
	Update(ctx context.Context, ownerID, id string, patch model.RecipePatch) (*model.Recipe, error)
	Delete(ctx context.Context, ownerID, id string) error
	SetFavourite(ctx context.Context, ownerID, id string, favourite bool) (*model.Recipe, error)
	EnrichNutrition(ctx context.Context, ownerID, id string) (*model.Recipe, error)
}
