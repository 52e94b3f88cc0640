package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealsmith/backend/internal/model"
	"github.com/mealsmith/backend/internal/service"
)

// MemoryRecipes is an in-process recipe repository with the same contract as
// the mongo implementation. It backs the test suite and local development
// without a database.
type MemoryRecipes struct {
	mu      sync.RWMutex
	recipes map[string]model.Recipe
}

func NewMemoryRecipes() *MemoryRecipes {
	return &MemoryRecipes{recipes: make(map[string]model.Recipe)}
}

func (m *MemoryRecipes) Owner(ownerID string) service.RecipeStore {
	return &memoryScope{repo: m, owner: ownerID}
}

type memoryScope struct {
	repo  *MemoryRecipes
	owner string
}

func (s *memoryScope) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = primitive.NewObjectID()
	recipe.OwnerID = s.owner
	recipe.CreatedAt = time.Now().UTC()

	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	s.repo.recipes[recipe.ID.Hex()] = cloneRecipe(*recipe)
	return recipe, nil
}

func (s *memoryScope) List(ctx context.Context) ([]model.Recipe, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	recipes := make([]model.Recipe, 0)
	for _, recipe := range s.repo.recipes {
		if recipe.OwnerID == s.owner {
			recipes = append(recipes, cloneRecipe(recipe))
		}
	}
	return recipes, nil
}

func (s *memoryScope) Get(ctx context.Context, id string) (*model.Recipe, error) {
	s.repo.mu.RLock()
	defer s.repo.mu.RUnlock()

	recipe, ok := s.repo.recipes[id]
	if !ok || recipe.OwnerID != s.owner {
		return nil, service.ErrNotFound
	}
	cloned := cloneRecipe(recipe)
	return &cloned, nil
}

func (s *memoryScope) Update(ctx context.Context, id string, patch model.RecipePatch) (*model.Recipe, error) {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	recipe, ok := s.repo.recipes[id]
	if !ok || recipe.OwnerID != s.owner {
		return nil, service.ErrNotFound
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = append([]string(nil), *patch.Ingredients...)
	}
	if patch.Instructions != nil {
		recipe.Instructions = *patch.Instructions
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if patch.Tags != nil {
		recipe.Tags = append([]string(nil), *patch.Tags...)
	}
	if patch.Nutrition != nil {
		nutrition := *patch.Nutrition
		recipe.Nutrition = &nutrition
	}
	if patch.Favourite != nil {
		recipe.Favourite = *patch.Favourite
	}

	s.repo.recipes[id] = recipe
	cloned := cloneRecipe(recipe)
	return &cloned, nil
}

func (s *memoryScope) Delete(ctx context.Context, id string) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	recipe, ok := s.repo.recipes[id]
	if !ok || recipe.OwnerID != s.owner {
		return service.ErrNotFound
	}
	delete(s.repo.recipes, id)
	return nil
}

// cloneRecipe copies the record and its slices so callers cannot mutate the
// stored document through aliasing.
func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	if r.Tags != nil {
		r.Tags = append([]string(nil), r.Tags...)
	}
	if r.Nutrition != nil {
		nutrition := *r.Nutrition
		r.Nutrition = &nutrition
	}
	return r
}
