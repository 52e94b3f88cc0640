package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealsmith/backend/internal/service"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken_ReturnsSubject(t *testing.T) {
	svc := service.NewAuthService("secret")
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	subject, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "owner-123", subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := service.NewAuthService("secret")
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := service.NewAuthService("secret")
	token := signToken(t, "secret", jwt.MapClaims{
		"sub": "owner-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestValidateToken_MissingSubject(t *testing.T) {
	svc := service.NewAuthService("secret")
	token := signToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService("secret")

	_, err := svc.ValidateToken("not-a-token")

	assert.Error(t, err)
}
