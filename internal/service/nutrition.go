package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
	"github.com/mealsmith/backend/internal/model"
)

// NutritionService delegates nutrient estimation to an external
// recipe-analysis API.
type NutritionService struct {
	client *resty.Client
	logger *zap.Logger
}

func NewNutritionService(cfg *config.Config, logger *zap.Logger) *NutritionService {
	client := resty.New().
		SetBaseURL(cfg.Nutrition.APIURL).
		SetHeader("x-api-key", cfg.Nutrition.APIKey).
		SetTimeout(cfg.Nutrition.Timeout).
		SetRetryCount(cfg.Nutrition.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// 429 must surface to the caller, never be retried away.
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &NutritionService{client: client, logger: logger}
}

type analyzeRequest struct {
	Title        string   `json:"title"`
	Servings     int      `json:"servings"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

type analyzeResponse struct {
	Nutrition *struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// Analyze submits the recipe text to the provider and name-matches the five
// tracked nutrients out of its unordered nutrient list. Unmatched nutrients
// stay at zero.
func (s *NutritionService) Analyze(ctx context.Context, recipe *model.Recipe) (*model.Nutrition, error) {
	req := analyzeRequest{
		Title:        recipe.Title,
		Servings:     recipe.Servings,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/recipes/analyze")
	if err != nil {
		s.logger.Error("nutrition request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode() == http.StatusTooManyRequests {
		s.logger.Warn("nutrition provider rate limited", zap.String("title", recipe.Title))
		return nil, ErrRateLimited
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.Error("nutrition request rejected", zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("%w: nutrition API returned status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	var result analyzeResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: decoding nutrition response: %v", ErrUpstreamUnavailable, err)
	}
	if result.Nutrition == nil || len(result.Nutrition.Nutrients) == 0 {
		return nil, ErrNutritionUnavailable
	}

	var n model.Nutrition
	for _, nutrient := range result.Nutrition.Nutrients {
		switch strings.ToLower(nutrient.Name) {
		case "calories":
			n.Calories = nutrient.Amount
		case "protein":
			n.Protein = nutrient.Amount
		case "carbohydrates", "carbs":
			n.Carbs = nutrient.Amount
		case "fat", "fats":
			n.Fats = nutrient.Amount
		case "cholesterol":
			n.Cholesterol = nutrient.Amount
		}
	}
	return &n, nil
}
