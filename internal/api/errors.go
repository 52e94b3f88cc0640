package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsmith/backend/internal/service"
)

// publicErrors are the failures whose message may be shown to callers.
// Anything else is reported as a generic internal error so provider details
// and stack context never leak.
var publicErrors = []error{
	service.ErrInvalidInput,
	service.ErrMissingFields,
	service.ErrNotFound,
	service.ErrRateLimited,
	service.ErrUpstreamUnavailable,
	service.ErrNoJSONFound,
	service.ErrMalformedJSON,
	service.ErrNotAnArray,
	service.ErrNutritionUnavailable,
}

// writeError maps a service failure onto a category-appropriate status with a
// short structured payload.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrMissingFields):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, service.ErrUpstreamUnavailable),
		errors.Is(err, service.ErrNoJSONFound),
		errors.Is(err, service.ErrMalformedJSON),
		errors.Is(err, service.ErrNotAnArray),
		errors.Is(err, service.ErrNutritionUnavailable):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": publicMessage(err)})
}

func publicMessage(err error) string {
	for _, sentinel := range publicErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal server error"
}
