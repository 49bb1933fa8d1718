package handlers

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/store"
)

// PublicUser is the user representation safe to return to clients.
type PublicUser struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

func publicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

// Signup registers a new account.
func (h *Handler) Signup(c *fiber.Ctx) error {
	type SignupRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input SignupRequest
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if !isEmail(input.Email) {
		return apperr.Validation("A valid email address is required")
	}
	if len(input.Password) < 8 {
		return apperr.Validation("Password must be at least 8 characters long")
	}

	db := middleware.DB(c)

	existing, err := store.GetUserByEmail(db, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.Conflict("An account with this email already exists.")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := store.CreateUser(db, &user); err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "Account created", publicUser(&user))
}

// Login exchanges form credentials for a bearer token. The same 401 is
// returned whether the email is unknown or the password is wrong.
func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginForm struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}
	type TokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	var input LoginForm
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}

	user, err := store.GetUserByEmail(middleware.DB(c), input.Username)
	if err != nil {
		return err
	}
	if user == nil || !auth.CheckPasswordHash(input.Password, user.PasswordHash) {
		return apperr.New(fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := h.Tokens.Issue(user.Email, 0)
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "Login successful", TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the account behind the presented token.
func (h *Handler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return success(c, fiber.StatusOK, "User found", publicUser(user))
}

func isEmail(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}
