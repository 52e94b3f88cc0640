package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/model"
)

// RecipeService handles the owner-scoped recipe lifecycle over the document
// store, plus nutrition enrichment.
type RecipeService struct {
	repo      RecipeRepository
	nutrition NutritionClient
	logger    *zap.Logger
}

func NewRecipeService(repo RecipeRepository, nutrition NutritionClient, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		repo:      repo,
		nutrition: nutrition,
		logger:    logger,
	}
}

// Create validates the candidate's required fields and persists it for the
// caller. The store assigns id, owner and creation time.
func (s *RecipeService) Create(ctx context.Context, ownerID string, candidate *model.CandidateRecipe) (*model.Recipe, error) {
	if err := validateRequired(candidate); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:        strings.TrimSpace(candidate.Title),
		Description:  strings.TrimSpace(candidate.Description),
		Ingredients:  candidate.Ingredients,
		Instructions: strings.TrimSpace(candidate.Instructions),
		Servings:     int(candidate.Servings),
		Tags:         candidate.Tags,
		Nutrition:    candidate.Nutrition,
	}
	if recipe.Servings < 1 {
		recipe.Servings = 1
	}

	created, err := s.repo.Owner(ownerID).Create(ctx, recipe)
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe created", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *RecipeService) List(ctx context.Context, ownerID string) ([]model.Recipe, error) {
	return s.repo.Owner(ownerID).List(ctx)
}

func (s *RecipeService) Get(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	return s.repo.Owner(ownerID).Get(ctx, id)
}

// Update applies a merge patch: absent fields stay untouched. A supplied but
// empty required field is rejected so the stored invariants hold at all times.
func (s *RecipeService) Update(ctx context.Context, ownerID, id string, patch model.RecipePatch) (*model.Recipe, error) {
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}
	return s.repo.Owner(ownerID).Update(ctx, id, patch)
}

func (s *RecipeService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Owner(ownerID).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("recipe deleted", zap.String("id", id))
	return nil
}

// SetFavourite flips the favourite flag without touching anything else.
func (s *RecipeService) SetFavourite(ctx context.Context, ownerID, id string, favourite bool) (*model.Recipe, error) {
	return s.repo.Owner(ownerID).Update(ctx, id, model.RecipePatch{Favourite: &favourite})
}

// EnrichNutrition computes nutrition via the external provider. Enrichment is
// idempotent by presence: a record whose nutrition already carries a non-zero
// value is returned unchanged without a provider call. An all-zero record is
// treated as never computed and recomputed.
func (s *RecipeService) EnrichNutrition(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	store := s.repo.Owner(ownerID)

	recipe, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.Nutrition.HasValues() {
		return recipe, nil
	}

	nutrition, err := s.nutrition.Analyze(ctx, recipe)
	if err != nil {
		return nil, err
	}

	updated, err := store.Update(ctx, id, model.RecipePatch{Nutrition: nutrition})
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe enriched", zap.String("id", id),
		zap.Float64("calories", nutrition.Calories))
	return updated, nil
}

func validateRequired(c *model.CandidateRecipe) error {
	if strings.TrimSpace(c.Title) == "" ||
		strings.TrimSpace(c.Description) == "" ||
		strings.TrimSpace(c.Instructions) == "" {
		return ErrMissingFields
	}
	if len(c.Ingredients) == 0 {
		return ErrMissingFields
	}
	for _, ingredient := range c.Ingredients {
		if strings.TrimSpace(ingredient) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

func validatePatch(p *model.RecipePatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrMissingFields
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return ErrMissingFields
	}
	if p.Instructions != nil && strings.TrimSpace(*p.Instructions) == "" {
		return ErrMissingFields
	}
	if p.Ingredients != nil {
		if len(*p.Ingredients) == 0 {
			return ErrMissingFields
		}
		for _, ingredient := range *p.Ingredients {
			if strings.TrimSpace(ingredient) == "" {
				return ErrMissingFields
			}
		}
	}
	if p.Servings != nil && *p.Servings < 1 {
		return ErrInvalidInput
	}
	return nil
}
