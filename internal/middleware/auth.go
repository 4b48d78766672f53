package middleware

import (
	"strings"

	"github.com/gazostheque/gazostheque/internal/models"
	"github.com/gazostheque/gazostheque/internal/services"
	"github.com/gazostheque/gazostheque/internal/types"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PrincipalKey is the ctx locals key holding the authenticated user.
const PrincipalKey = "principal"

// RequireUser validates the Bearer session token, loads the account
// and stores it in ctx locals. Every read endpoint behind the login
// wall uses this; mutation endpoints layer the ownership gate on top.
func RequireUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorization token is required",
				Type:    "authorization",
			}
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorization header format must be Bearer {token}",
				Type:    "authorization",
			}
		}

		userID, err := services.VerifyToken(parts[1])
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Invalid or expired token",
				Type:    "authorization",
			}
		}

		user, err := services.GetUser(db, userID)
		if err != nil || !user.IsActive {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Unknown or inactive user",
				Type:    "authorization",
			}
		}

		c.Locals(PrincipalKey, user)
		return c.Next()
	}
}

// Principal returns the authenticated user stored by RequireUser, or
// nil when the route did not pass through it.
func Principal(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(PrincipalKey).(*models.User)
	return user
}
