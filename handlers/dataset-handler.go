package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/authz"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/store"
)

// ListDatasets returns datasets visible to the current user: public
// ones plus their own.
func (h *Handler) ListDatasets(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	datasets, err := store.ListDatasetsVisibleTo(
		middleware.DB(c), middleware.CurrentUser(c).ID, skip, limit,
	)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Datasets found", datasets)
}

// GetDataset returns one dataset. Existence is checked before the
// visibility gate.
func (h *Handler) GetDataset(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperr.NotFound("Dataset")
	}

	dataset, err := store.GetDataset(middleware.DB(c), uint(id))
	if err != nil {
		return err
	}
	if dataset == nil {
		return apperr.NotFound("Dataset")
	}
	if err := authz.DatasetAccess(dataset, middleware.CurrentUser(c)); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "Dataset found", dataset)
}

// UploadDataset accepts dataset metadata and a file upload attempt and
// records the metadata only. The file content is deliberately
// discarded: storage integration is not implemented, so storage fields
// are placeholders until a real backend fills them in.
func (h *Handler) UploadDataset(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return apperr.Validation("Dataset name is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("No file provided")
	}
	log.Printf("placeholder upload: file %q (%d bytes) received and discarded", file.Filename, file.Size)

	isPublic, _ := strconv.ParseBool(c.FormValue("is_public"))

	userID := middleware.CurrentUser(c).ID
	dataset := models.Dataset{
		Name:        name,
		Description: c.FormValue("description"),
		IsPublic:    isPublic,
		UserID:      &userID,
		StorageType: "placeholder",
		StoragePath: "pending_upload",
	}
	if err := store.CreateDataset(middleware.DB(c), &dataset); err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "Dataset metadata recorded", dataset)
}
