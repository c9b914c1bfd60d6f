package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"clientbase/internal/auth"
	"clientbase/internal/repository"
)

// UserLocalKey is the key used to store the authenticated *model.User in
// Fiber's context locals.
const UserLocalKey = "user"

// Auth validates the Bearer token and loads the account behind it.
// Unauthenticated requests never reach the protected handlers, so the
// ownership checks downstream can rely on a resolved user.
func Auth(users repository.UserRepository, tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization format")
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		user, err := users.FindByID(c.UserContext(), claims.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "user not found")
		}

		c.Locals(UserLocalKey, user)

		return c.Next()
	}
}
