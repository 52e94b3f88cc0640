package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mealsmith/backend/internal/model"
	"github.com/mealsmith/backend/internal/service"
)

// MockCompletionClient is a mock implementation of the completion client.
type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockNutritionClient is a mock implementation of the nutrition client.
type MockNutritionClient struct {
	mock.Mock
}

func (m *MockNutritionClient) Analyze(ctx context.Context, recipe *model.Recipe) (*model.Nutrition, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Nutrition), args.Error(1)
}

// MockGenerationService is a mock implementation of the generation service.
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateRecipes(ctx context.Context, ingredients, preferences []string, mealType string) ([]model.CandidateRecipe, error) {
	args := m.Called(ctx, ingredients, preferences, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CandidateRecipe), args.Error(1)
}

// MockDraftService is a mock implementation of the draft service.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Save(ctx context.Context, ownerID string, recipes []model.CandidateRecipe) (*service.Draft, error) {
	args := m.Called(ctx, ownerID, recipes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Draft), args.Error(1)
}

func (m *MockDraftService) Get(ctx context.Context, ownerID, id string) (*service.Draft, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Draft), args.Error(1)
}

func (m *MockDraftService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of the recipe service.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, ownerID string, candidate *model.CandidateRecipe) (*model.Recipe, error) {
	args := m.Called(ctx, ownerID, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, ownerID string) ([]model.Recipe, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, ownerID, id string, patch model.RecipePatch) (*model.Recipe, error) {
	args := m.Called(ctx, ownerID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockRecipeService) SetFavourite(ctx context.Context, ownerID, id string, favourite bool) (*model.Recipe, error) {
	args := m.Called(ctx, ownerID, id, favourite)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) EnrichNutrition(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}
