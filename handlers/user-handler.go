package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/store"
)

// UpdateProfile changes the current user's name and/or email. Fields
// absent from the body are left untouched.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	type ProfileUpdate struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	var input ProfileUpdate
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}

	db := middleware.DB(c)
	user := middleware.CurrentUser(c)

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		if !isEmail(*input.Email) {
			return apperr.Validation("A valid email address is required")
		}
		existing, err := store.GetUserByEmail(db, *input.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("This email address is already registered.")
		}
		updates["email"] = *input.Email
	}

	if err := store.UpdateUser(db, user, updates); err != nil {
		return err
	}

	updated, err := store.GetUser(db, user.ID)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Profile updated", publicUser(updated))
}

// UpdatePassword re-hashes and stores a new password after verifying
// the current one.
func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	type PasswordUpdate struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var input PasswordUpdate
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if len(input.NewPassword) < 8 {
		return apperr.Validation("Password must be at least 8 characters long")
	}

	user := middleware.CurrentUser(c)
	if !auth.CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		return apperr.Conflict("Incorrect current password")
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := store.UpdateUser(middleware.DB(c), user, map[string]interface{}{
		"password_hash": hash,
	}); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "Password updated successfully", nil)
}
