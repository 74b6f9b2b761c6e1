package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cookmaster/internal/models"
	"cookmaster/internal/token"
)

const claimsKey = "claims"

// Auth gates protected routes. It reads the raw token from the Authorization
// header (no Bearer prefix), verifies it, and attaches the decoded claims to
// the request context. It never touches the user store.
func Auth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		if tokenString == "" {
			return c.Status(models.ErrMissingToken.Status).JSON(models.ErrMissingToken)
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			var apiErr *models.APIError
			if !errors.As(err, &apiErr) {
				apiErr = models.ErrMalformedToken
			}
			return c.Status(apiErr.Status).JSON(apiErr)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// Claims returns the identity attached by Auth, or nil on an unprotected
// route.
func Claims(c *fiber.Ctx) *models.Claims {
	claims, _ := c.Locals(claimsKey).(*models.Claims)
	return claims
}
