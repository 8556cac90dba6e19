package api

import (
	"errors"
	"log"
	"strings"

	"github.com/example/user-account-service/modules/users"
	"github.com/gofiber/fiber/v2"
)

const (
	// CurrentUserKey is the key used to store the resolved user in the
	// Fiber context.
	CurrentUserKey = "currentUser"
)

// RequireAuth creates a middleware that gates protected routes behind a
// bearer token. The token subject is resolved to a stored user before the
// wrapped handler runs, so a token for a deleted user stops authorizing
// even while its signature and expiry are still valid.
func RequireAuth(port users.UsersPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Status:  false,
				Message: "Authentication token is missing",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Status:  false,
				Message: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Status:  false,
				Message: "Authentication token is missing",
			})
		}

		claims, err := port.ValidateToken(c.UserContext(), token)
		if err != nil {
			switch {
			case errors.Is(err, users.ErrExpiredToken):
				return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
					Status:  false,
					Message: "Token has expired",
				})
			case errors.Is(err, users.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
					Status:  false,
					Message: "Invalid token",
				})
			default:
				// Validation infrastructure failure, not an auth failure.
				log.Printf("[api] Token validation failed unexpectedly: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
					Status:  false,
					Message: "Something went wrong",
				})
			}
		}

		user, err := port.GetUser(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
					Status:  false,
					Message: "Invalid token",
				})
			}
			// Infrastructure failure during lookup, not an auth failure.
			log.Printf("[api] Failed to resolve token subject: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
				Status:  false,
				Message: "Something went wrong",
			})
		}

		c.Locals(CurrentUserKey, user)

		return c.Next()
	}
}
