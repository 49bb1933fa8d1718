// Seeds the model catalog with the platform's built-in entries.
// Safe to re-run: rows whose source_identifier already exists are
// skipped.
package main

import (
	"log"

	"github.com/democratise-ai/backend/config"
	"github.com/democratise-ai/backend/database"
	"github.com/democratise-ai/backend/models"
)

var catalog = []models.Model{
	{
		Name:             "BERT Base Uncased",
		Description:      "Bidirectional transformer pretrained on English text.",
		SourceType:       "huggingface",
		SourceIdentifier: "bert-base-uncased",
		TaskType:         "Language Model",
		Framework:        "pytorch",
	},
	{
		Name:             "ResNet-50",
		Description:      "50-layer residual network for image classification.",
		SourceType:       "torchvision",
		SourceIdentifier: "resnet50",
		TaskType:         "Image Classification",
		Framework:        "pytorch",
	},
	{
		Name:             "DistilBERT Base Uncased",
		Description:      "Distilled BERT, smaller and faster with comparable accuracy.",
		SourceType:       "huggingface",
		SourceIdentifier: "distilbert-base-uncased",
		TaskType:         "Text Classification",
		Framework:        "pytorch",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var identifiers []string
	if err := db.Model(&models.Model{}).Pluck("source_identifier", &identifiers).Error; err != nil {
		log.Fatalf("Failed to read existing models: %v", err)
	}
	existing := map[string]bool{}
	for _, id := range identifiers {
		existing[id] = true
	}

	added := 0
	for _, model := range catalog {
		if existing[model.SourceIdentifier] {
			continue
		}
		if err := db.Create(&model).Error; err != nil {
			log.Fatalf("Failed to seed model %q: %v", model.SourceIdentifier, err)
		}
		added++
	}

	if added > 0 {
		log.Printf("Added %d new models.", added)
	} else {
		log.Println("No new models to add.")
	}
}
