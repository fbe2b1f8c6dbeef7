package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/canasta/internal/config"
	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
	"github.com/example/canasta/internal/utils"
)

const userContextKey = "currentUser"

// unauthorized is the structured rejection returned before any resolver
// runs: an error code plus the associated transport status.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"errors": []fiber.Map{{
			"message": "Unauthorized. Please log in to access this resource.",
			"extensions": fiber.Map{
				"code": "UNAUTHORIZED",
				"http": fiber.Map{"status": fiber.StatusUnauthorized},
			},
		}},
	})
}

// currentUser resolves the bearer token to a user record, if any.
func currentUser(c *fiber.Ctx, cfg *config.Config, st *store.Store) *models.User {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	userID, err := utils.ParseToken(cfg.JWTSecret, parts[1])
	if err != nil {
		return nil
	}

	user, err := st.GetUser(userID)
	if err != nil || !user.IsActive {
		return nil
	}
	return user
}

// RequireAuth rejects unauthenticated requests with the structured 401
// payload and loads the authenticated user into the request context.
func RequireAuth(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c, cfg, st)
		if user == nil {
			return unauthorized(c)
		}
		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present but lets the
// request through either way. Logout uses it to report the no-session case
// as a payload instead of a 401.
func OptionalAuth(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := currentUser(c, cfg, st); user != nil {
			c.Locals(userContextKey, user)
		}
		return c.Next()
	}
}

// RequireAdmin rejects callers without the staff flag. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok || !user.IsStaff {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Permission denied. Only admin users can perform this action.",
			})
		}
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from context.
func GetCurrentUser(c *fiber.Ctx) (*models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return nil, false
	}
	if user, ok := value.(*models.User); ok {
		return user, true
	}
	return nil, false
}
