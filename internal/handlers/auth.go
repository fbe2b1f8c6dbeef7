package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/canasta/internal/config"
	"github.com/example/canasta/internal/middleware"
	"github.com/example/canasta/internal/models"
	"github.com/example/canasta/internal/store"
	"github.com/example/canasta/internal/utils"
)

// invalidCredentials is deliberately the same for unknown identifiers and
// wrong passwords, so callers cannot probe which accounts exist.
const invalidCredentials = "Invalid username or password"

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	st  *store.Store
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{st: st, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user by username or email and issues a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// An identifier containing '@' is treated as an email and resolved to
	// the account's username first.
	username := req.Username
	if strings.Contains(username, "@") {
		user, err := h.st.GetUserByEmail(username)
		if err == store.ErrNotFound {
			return c.JSON(fiber.Map{"success": false, "message": invalidCredentials})
		}
		if err != nil {
			return err
		}
		username = user.Username
	}

	user, err := h.st.GetUserByUsername(username)
	if err == store.ErrNotFound {
		return c.JSON(fiber.Map{"success": false, "message": invalidCredentials})
	}
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.JSON(fiber.Map{"success": false, "message": invalidCredentials})
	}

	if !user.IsActive {
		return c.JSON(fiber.Map{"success": false, "message": "This account has been disabled"})
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Logout ends the session. Called without one, it reports the no-session
// outcome as a payload rather than failing.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if _, ok := middleware.GetCurrentUser(c); !ok {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "No user is currently logged in",
		})
	}

	// Bearer sessions end client-side; the server just confirms.
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Me returns the currently authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, _ := middleware.GetCurrentUser(c)
	return c.JSON(fiber.Map{"success": true, "user": user})
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
	IsActive  *bool  `json:"is_active"`
}

// Register creates a new user account. Admin-only; the router gates it.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(fiber.Map{"success": false, "message": "Username and password are required"})
	}

	// Username first, then email: nothing is created when either is taken.
	taken, err := h.st.UsernameExists(req.Username)
	if err != nil {
		return err
	}
	if taken {
		return c.JSON(fiber.Map{"success": false, "message": "Username already exists"})
	}

	if req.Email != "" {
		if _, err := h.st.GetUserByEmail(req.Email); err == nil {
			return c.JSON(fiber.Map{"success": false, "message": "Email already exists"})
		} else if err != store.ErrNotFound {
			return err
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsStaff:      req.IsStaff,
		IsActive:     isActive,
	}

	if err := h.st.CreateUser(&user); err != nil {
		if store.IsConstraint(err) {
			return c.JSON(fiber.Map{"success": false, "message": "Username already exists"})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("User '%s' registered successfully", user.Username),
		"user":    user,
	})
}
