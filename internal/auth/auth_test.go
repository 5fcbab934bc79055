package auth_test

import (
	"testing"
	"time"

	"smartPlanner/internal/auth"
	"smartPlanner/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("test-signing-key")

// TestParseToken тестирует разбор валидного токена
func TestParseToken(t *testing.T) {
	user := models.Identity{UID: "u1", Name: "Student", Email: "student@example.com"}

	token, err := auth.NewToken(user, signingKey, time.Hour)
	require.NoError(t, err)

	parsed, err := auth.ParseToken(token, signingKey)
	require.NoError(t, err)
	assert.Equal(t, user, parsed)
}

// TestParseToken_WrongKey тестирует отказ по чужой подписи
func TestParseToken_WrongKey(t *testing.T) {
	token, err := auth.NewToken(models.Identity{UID: "u1"}, signingKey, time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, []byte("another-key"))
	assert.Error(t, err)
}

// TestParseToken_Expired тестирует отказ по истёкшему сроку
func TestParseToken_Expired(t *testing.T) {
	token, err := auth.NewToken(models.Identity{UID: "u1"}, signingKey, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(token, signingKey)
	assert.Error(t, err)
}

// TestParseToken_NoSubject тестирует отказ на токене без subject
func TestParseToken_NoSubject(t *testing.T) {
	claims := auth.Claims{Name: "NoSubject"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signingKey)
	require.NoError(t, err)

	_, err = auth.ParseToken(signed, signingKey)
	assert.Error(t, err)
}

// TestParseToken_Garbage тестирует отказ на мусорной строке
func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("not.a.token", signingKey)
	assert.Error(t, err)
}
