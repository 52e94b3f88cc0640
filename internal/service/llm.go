package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
)

// noResponseFallback is returned when the provider answers 200 but without
// any choice content.
const noResponseFallback = "No response generated"

// LLMService submits one-shot, single-message completions to an
// OpenAI-compatible chat endpoint. A failed call fails the surrounding
// request; the only retry behaviour lives in the transport layer below and is
// bounded by configuration.
type LLMService struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewLLMService(cfg *config.Config, logger *zap.Logger) *LLMService {
	client := resty.New().
		SetBaseURL(cfg.Groq.APIURL).
		SetAuthToken(cfg.Groq.APIKey).
		SetTimeout(cfg.Groq.Timeout).
		SetRetryCount(cfg.Groq.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &LLMService{
		client: client,
		model:  cfg.Groq.Model,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// Complete sends the prompt as a single user-role message and returns the
// first choice's content, or the fallback sentinel when the provider returns
// no content.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model:    s.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		s.logger.Error("completion request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.Error("completion request rejected",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", s.model))
		return "", fmt.Errorf("%w: completion API returned status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decoding completion response: %v", ErrUpstreamUnavailable, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		s.logger.Warn("completion returned no content", zap.String("model", s.model))
		return noResponseFallback, nil
	}
	return result.Choices[0].Message.Content, nil
}
