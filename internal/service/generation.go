package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/model"
)

// GenerationService turns a structured generation request into validated
// candidate recipes: prompt -> completion -> extraction -> parse.
type GenerationService struct {
	completions CompletionClient
	logger      *zap.Logger
}

func NewGenerationService(completions CompletionClient, logger *zap.Logger) *GenerationService {
	return &GenerationService{completions: completions, logger: logger}
}

// GenerateRecipes returns the model's candidates in the order it produced
// them; no re-ranking happens here.
func (s *GenerationService) GenerateRecipes(ctx context.Context, ingredients, preferences []string, mealType string) ([]model.CandidateRecipe, error) {
	prompt := BuildRecipePrompt(ingredients, preferences, mealType)

	response, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw, err := ExtractJSONArray(response)
	if err != nil {
		s.logger.Warn("completion contained no JSON array",
			zap.Int("response_length", len(response)))
		return nil, err
	}

	candidates, err := ParseCandidates(raw)
	if err != nil {
		s.logger.Warn("failed to parse completion", zap.Error(err))
		return nil, err
	}

	s.logger.Info("generated candidate recipes", zap.Int("count", len(candidates)))
	return candidates, nil
}
