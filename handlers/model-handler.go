package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/store"
)

// Model catalog endpoints are unauthenticated: there is no ownership
// on models and the catalog is globally readable.

func (h *Handler) ListModels(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	catalog, err := store.ListModels(middleware.DB(c), skip, limit)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Models found", catalog)
}

func (h *Handler) GetModel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperr.NotFound("Model")
	}

	model, err := store.GetModel(middleware.DB(c), uint(id))
	if err != nil {
		return err
	}
	if model == nil {
		return apperr.NotFound("Model")
	}

	return success(c, fiber.StatusOK, "Model found", model)
}
