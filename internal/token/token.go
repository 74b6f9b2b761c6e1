package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cookmaster/internal/models"
)

// Service issues and verifies signed identity tokens. The signing secret and
// TTL are fixed at construction; issuing and verifying touch no other state,
// so verification never consults the user store.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's identity, valid for the
// configured TTL.
func (s *Service) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := models.Claims{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes a token and checks its signature and expiry. It returns
// ErrExpiredToken for an expired token and ErrMalformedToken for anything
// else that fails to parse or verify: corrupted tokens, forged signatures,
// tokens signed with another secret.
func (s *Service) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.ErrExpiredToken
		}
		return nil, models.ErrMalformedToken
	}
	if !parsed.Valid {
		return nil, models.ErrMalformedToken
	}

	return claims, nil
}
