package api_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mealsmith/backend/config"
	"github.com/mealsmith/backend/internal/api"
	"github.com/mealsmith/backend/internal/router"
	"github.com/mealsmith/backend/internal/service"
)

const testSecret = "test-jwt-secret"

func setupTestRouter(recipes service.IRecipeService, generator service.IGenerationService, drafts service.IDraftService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	logger := zap.NewNop()

	recipeHandler := api.NewRecipeHandler(recipes, logger)
	llmHandler := api.NewLLMHandler(generator, drafts, logger)
	validator := service.NewAuthService(testSecret)

	return router.SetupRouter(cfg, logger, validator, recipeHandler, llmHandler)
}

func ownerToken(t *testing.T, ownerID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": ownerID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
