package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/democratise-ai/backend/apperr"
	"github.com/democratise-ai/backend/authz"
	"github.com/democratise-ai/backend/middleware"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/store"
)

// CreateProject creates a project owned by the current user.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	type ProjectCreate struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var input ProjectCreate
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if input.Name == "" {
		return apperr.Validation("Project name is required")
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      "active",
		UserID:      middleware.CurrentUser(c).ID,
	}
	if err := store.CreateProject(middleware.DB(c), &project); err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "Project created", project)
}

// ListProjects returns the current user's projects.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	skip, limit := pagination(c)
	projects, err := store.ListProjectsByOwner(
		middleware.DB(c), middleware.CurrentUser(c).ID, skip, limit,
	)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Projects found", projects)
}

// GetProject returns one project. Existence is checked before
// ownership so non-owners see the same 404 as everyone else.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.fetchOwnedProject(c)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Project found", project)
}

// UpdateProject applies a partial update: only fields present in the
// body change.
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	type ProjectUpdate struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}

	var input ProjectUpdate
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid request body")
	}

	project, err := h.fetchOwnedProject(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	db := middleware.DB(c)
	if err := store.UpdateProject(db, project, updates); err != nil {
		return err
	}

	updated, err := store.GetProject(db, project.ID)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Project updated", updated)
}

// DeleteProject removes a project and returns its last state.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	project, err := h.fetchOwnedProject(c)
	if err != nil {
		return err
	}
	if err := store.DeleteProject(middleware.DB(c), project); err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Project deleted", project)
}

// fetchOwnedProject loads the project from the path id, 404s when it
// does not exist, then runs the ownership gate.
func (h *Handler) fetchOwnedProject(c *fiber.Ctx) (*models.Project, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, apperr.NotFound("Project")
	}

	project, err := store.GetProject(middleware.DB(c), uint(id))
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperr.NotFound("Project")
	}
	if err := authz.ProjectAccess(project, middleware.CurrentUser(c)); err != nil {
		return nil, err
	}
	return project, nil
}
