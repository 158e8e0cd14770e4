package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by Middleware for downstream handlers.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// Middleware returns a Fiber handler that requires a valid bearer token and
// stores the token subject in the request locals.
func Middleware(issuer *TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// UserID extracts the authenticated user id stored by Middleware.
func UserID(c *fiber.Ctx) (string, bool) {
	uid, ok := c.Locals(LocalUserID).(string)
	if !ok || strings.TrimSpace(uid) == "" {
		return "", false
	}
	return uid, true
}
