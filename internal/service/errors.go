package service

import "errors"

// Failure taxonomy for the recipe lifecycle. Handlers map these onto HTTP
// statuses at the request boundary; nothing below that layer knows about HTTP.
var (
	// ErrInvalidInput marks a malformed caller payload, e.g. ingredients that
	// are not an array of strings.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingFields marks a recipe missing title, description,
	// instructions or a non-empty ingredient list.
	ErrMissingFields = errors.New("missing required fields")

	// ErrNotFound covers both an absent record and one owned by a different
	// caller.
	ErrNotFound = errors.New("recipe not found")

	// ErrUpstreamUnavailable marks a completion or nutrition provider that is
	// unreachable or answered with an error.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrRateLimited marks a 429 from the nutrition provider.
	ErrRateLimited = errors.New("nutrition provider rate limit exceeded")

	ErrNoJSONFound          = errors.New("no JSON array found in model response")
	ErrMalformedJSON        = errors.New("model response is not valid JSON")
	ErrNotAnArray           = errors.New("model response is not a JSON array")
	ErrNutritionUnavailable = errors.New("no nutrition data returned")
)
