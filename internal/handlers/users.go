package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/canasta/internal/middleware"
	"github.com/example/canasta/internal/store"
)

// UserHandler manages admin-only user endpoints.
type UserHandler struct {
	st *store.Store
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{st: st}
}

// ListUsers returns every non-superuser account, newest first.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.st.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

type updateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	IsStaff   *bool   `json:"is_staff"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateUser applies a partial update to a user account.
//
// Superuser accounts are immutable here. Another admin's staff/active
// flags cannot be changed, though their name and email still can. Flags
// of non-staff accounts are freely adjustable.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	caller, _ := middleware.GetCurrentUser(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	target, err := h.st.GetUser(id)
	if err == store.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	if err != nil {
		return err
	}

	if target.IsSuperuser {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Superuser accounts cannot be modified",
		})
	}

	touchesFlags := req.IsStaff != nil || req.IsActive != nil
	if target.IsStaff && target.ID != caller.ID && touchesFlags {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Cannot change another admin's staff or active flags",
		})
	}

	if req.Email != nil && *req.Email != target.Email {
		exists, err := h.st.EmailExistsExcluding(*req.Email, target.ID)
		if err != nil {
			return err
		}
		if exists {
			return c.JSON(fiber.Map{"success": false, "message": "Email already exists"})
		}
		target.Email = *req.Email
	}

	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.IsStaff != nil {
		target.IsStaff = *req.IsStaff
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}

	if err := h.st.UpdateUser(target); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"user":    target,
	})
}
