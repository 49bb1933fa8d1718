package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/authz"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/store"
)

// SubmitTrainingRun records a training run for a project in 'queued'
// status and returns 202. Nothing is scheduled or executed here; the
// executor that picks runs up is a separate system.
//
// The project must exist and belong to the caller, and the referenced
// model and dataset must exist, before any row is written. The request
// transaction guarantees a failed validation persists nothing.
func (h *Handler) SubmitTrainingRun(c *fiber.Ctx) error {
	type TrainingRunCreate struct {
		ModelID      uint                   `json:"model_id"`
		DatasetID    uint                   `json:"dataset_id"`
		ConfigParams map[string]interface{} `json:"config_params"`
	}

	var input TrainingRunCreate
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}

	project, err := h.fetchOwnedProject(c)
	if err != nil {
		return err
	}

	db := middleware.DB(c)

	model, err := store.GetModel(db, input.ModelID)
	if err != nil {
		return err
	}
	if model == nil {
		return apperr.NotFound("Model")
	}

	dataset, err := store.GetDataset(db, input.DatasetID)
	if err != nil {
		return err
	}
	if dataset == nil {
		return apperr.NotFound("Dataset")
	}

	run := models.TrainingRun{
		ProjectID:    project.ID,
		UserID:       middleware.CurrentUser(c).ID,
		ModelID:      input.ModelID,
		DatasetID:    input.DatasetID,
		ConfigParams: datatypes.JSONMap(input.ConfigParams),
	}
	if err := store.CreateTrainingRun(db, &run); err != nil {
		return err
	}

	return success(c, fiber.StatusAccepted, "Training job queued", run)
}

// GetTrainingJob returns a training run's status and details. Only the
// initiator may read it; existence is checked first.
func (h *Handler) GetTrainingJob(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apperr.NotFound("Training job")
	}

	run, err := store.GetTrainingRun(middleware.DB(c), uint(id))
	if err != nil {
		return err
	}
	if run == nil {
		return apperr.NotFound("Training job")
	}
	if err := authz.TrainingRunAccess(run, middleware.CurrentUser(c)); err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "Training job found", run)
}
