package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/config"
	"github.com/democratise-ai/backend/database"
	"github.com/democratise-ai/backend/handlers"
	"github.com/democratise-ai/backend/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing the database connection: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Democratise AI",
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
		}))
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	router.SetupRoutes(app, handlers.New(tokens, cfg), cfg, db)

	log.Printf("Server is listening at the port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
