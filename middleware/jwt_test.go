package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	signed, err := GenerateJWT(secret, time.Hour, 42, "Alex Kim", "STUDENT", "alex@example.com", "jti-123")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "Alex Kim", claims["name"])
	assert.Equal(t, "STUDENT", claims["role"])
	assert.Equal(t, "alex@example.com", claims["email"])
	assert.Equal(t, "jti-123", claims["jti"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(3600), exp-iat)
}

func TestGenerateJWTRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT("right-secret", time.Hour, 1, "n", "r", "e", "j")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
