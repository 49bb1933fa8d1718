package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/democratise-ai/backend/config"
	"github.com/democratise-ai/backend/handlers"
	"github.com/democratise-ai/backend/middleware"
)

// SetupRoutes wires the versioned API. Every /api/v1 request runs
// inside its own transaction; protected groups add the bearer-token
// identity resolver on top.
func SetupRoutes(app *fiber.App, h *handlers.Handler, cfg *config.Config, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Democratise AI!"})
	})

	api := app.Group("/api/v1", logger.New(), middleware.Transaction(db))
	requireAuth := middleware.RequireAuth(h.Tokens, cfg.RejectInactiveUsers)

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/me", requireAuth, h.Me)

	// User settings
	user := api.Group("/user", requireAuth)
	user.Put("/profile", h.UpdateProfile)
	user.Put("/password", h.UpdatePassword)

	// Projects (owner-gated) and training submission
	projects := api.Group("/projects", requireAuth)
	projects.Post("/", h.CreateProject)
	projects.Get("/", h.ListProjects)
	projects.Get("/:id", h.GetProject)
	projects.Put("/:id", h.UpdateProject)
	projects.Delete("/:id", h.DeleteProject)
	projects.Post("/:id/train", h.SubmitTrainingRun)

	// Datasets (public-or-owner gated)
	datasets := api.Group("/datasets", requireAuth)
	datasets.Get("/", h.ListDatasets)
	datasets.Get("/:id", h.GetDataset)
	datasets.Post("/upload", h.UploadDataset)

	// Model catalog (no auth)
	catalog := api.Group("/models")
	catalog.Get("/", h.ListModels)
	catalog.Get("/:id", h.GetModel)

	// Training job status
	training := api.Group("/training", requireAuth)
	training.Get("/jobs/:id", h.GetTrainingJob)
}
