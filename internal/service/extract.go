package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mealsmith/backend/internal/model"
)

// ExtractJSONArray isolates the JSON-array substring from the surrounding
// completion text: everything from the first '[' to the last ']' inclusive.
// This is a textual heuristic, not a parser; a bracket inside a string value
// will confuse it, and the downstream parse is the backstop.
func ExtractJSONArray(response string) (string, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONFound
	}
	return response[start : end+1], nil
}

// ParseCandidates parses an extracted substring into candidate recipes. The
// top-level value must be a JSON array; element order is preserved exactly as
// the model ranked it. Per-field validation is deferred to the save path,
// which is the actual gate for required fields.
func ParseCandidates(raw string) ([]model.CandidateRecipe, error) {
	var generic any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, ok := generic.([]any); !ok {
		return nil, ErrNotAnArray
	}

	var candidates []model.CandidateRecipe
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return candidates, nil
}
