package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/config"
)

// Handler carries the process-wide collaborators. The database is NOT
// here: handlers read the request-scoped transaction from the
// middleware so commits and rollbacks stay deterministic.
type Handler struct {
	Tokens *auth.TokenService
	Cfg    *config.Config
}

func New(tokens *auth.TokenService, cfg *config.Config) *Handler {
	return &Handler{Tokens: tokens, Cfg: cfg}
}

func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ErrorHandler is the single place failure responses are written.
// Typed apperr values keep their status and message; anything else is
// logged and hidden behind a generic 500 so internals never leak.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *apperr.Error
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"status":  "error",
			"message": apiErr.Message,
			"data":    nil,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  "error",
			"message": fiberErr.Message,
			"data":    nil,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "An internal server error occurred.",
		"data":    nil,
	})
}

// pagination reads skip/limit query params. Out-of-range values are
// clamped rather than rejected.
func pagination(c *fiber.Ctx) (skip, limit int) {
	skip = c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit = c.QueryInt("limit", 100)
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}
	return skip, limit
}
