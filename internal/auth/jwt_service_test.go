package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	token, err := service.GenerateToken("alice@example.com", []string{"user", "admin"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateToken("alice@example.com", []string{"user"})
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTService("test-secret", -time.Minute)

	token, err := service.GenerateToken("alice@example.com", []string{"user"})
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	_, err := service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	first, err := service.GenerateToken("alice@example.com", nil)
	assert.NoError(t, err)
	second, err := service.GenerateToken("alice@example.com", nil)
	assert.NoError(t, err)

	firstClaims, err := service.ValidateToken(first)
	assert.NoError(t, err)
	secondClaims, err := service.ValidateToken(second)
	assert.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
