package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("GROQ_API_KEY", "test-groq-key")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "mealsmith", cfg.Mongo.Database)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.APIURL)
	assert.Equal(t, "deepseek-r1-distill-llama-70b", cfg.Groq.Model)
	assert.Equal(t, 0, cfg.Groq.RetryCount)
	assert.Equal(t, 15*time.Second, cfg.Nutrition.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("GROQ_RETRY_COUNT", "2")
	t.Setenv("MONGO_DB", "recipes_test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, 2, cfg.Groq.RetryCount)
	assert.Equal(t, "recipes_test", cfg.Mongo.Database)
}

func TestLoad_RequiredSettings(t *testing.T) {
	cases := map[string]string{
		"MONGO_URI":    "MONGO_URI must be set",
		"GROQ_API_KEY": "GROQ_API_KEY must be set",
		"JWT_SECRET":   "JWT_SECRET must be set",
	}
	for unset, want := range cases {
		t.Run(unset, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(unset, "")

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), want)
		})
	}
}
