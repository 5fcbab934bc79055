package auth

import (
	"fmt"
	"time"

	"smartPlanner/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Провайдер аутентификации внешний: сюда приходит уже подписанный токен,
// мы только проверяем подпись и достаём личность пользователя.

type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func ParseToken(tokenString string, signingKey []byte) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return models.Identity{}, fmt.Errorf("failed to parse token claims")
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("токен без subject")
	}

	return models.Identity{
		UID:   claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}

// NewToken выписывает токен с личностью пользователя.
// Используется тестами и локальной отладкой.
func NewToken(user models.Identity, signingKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}
