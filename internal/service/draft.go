package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/internal/model"
)

// draftTTL bounds how long an unsaved generation result is kept around.
const draftTTL = 24 * time.Hour

// Draft is a cached generation result awaiting save or discard.
type Draft struct {
	ID        string                  `json:"id"`
	OwnerID   string                  `json:"owner_id"`
	Recipes   []model.CandidateRecipe `json:"recipes"`
	CreatedAt time.Time               `json:"created_at"`
}

// DraftService stores candidate sets in Redis so a caller can come back and
// save one without regenerating.
type DraftService struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewDraftService(client *redis.Client, logger *zap.Logger) *DraftService {
	return &DraftService{redis: client, logger: logger}
}

func (s *DraftService) Save(ctx context.Context, ownerID string, recipes []model.CandidateRecipe) (*Draft, error) {
	draft := &Draft{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Recipes:   recipes,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("marshaling draft: %w", err)
	}
	if err := s.redis.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}

	s.logger.Debug("draft saved", zap.String("draft_id", draft.ID),
		zap.Int("recipes", len(recipes)))
	return draft, nil
}

// Get returns the draft only to the owner that generated it; anyone else sees
// not-found.
func (s *DraftService) Get(ctx context.Context, ownerID, id string) (*Draft, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("unmarshaling draft: %w", err)
	}
	if draft.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &draft, nil
}

func (s *DraftService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}

func draftKey(id string) string {
	return "recipe:draft:" + id
}
